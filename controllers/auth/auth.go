package authController

import (
	"log"
	"time"
	"vidya/config"
	"vidya/database"
	"vidya/middleware"
	"vidya/models"
	"vidya/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Mobile   string `json:"mobile"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Prepare User Struct for DB Entry. Everyone signs up as a student;
	// admin accounts are promoted manually.
	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Role:     "STUDENT",
		Password: string(hashedPassword),
	}

	// Create User
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	go func(user models.User) {
		if err := utils.SendWelcomeEmail(user.Name, user.Email); err != nil {
			log.Printf("Error sending welcome email to %s: %v", user.Email, err)
		}
	}(newUser)

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	user.LastLogin = time.Now()
	db.Save(&user)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
