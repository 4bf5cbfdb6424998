package middleware

import (
	"vidya/database"
	"vidya/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireAdmin checks the stored role of the authenticated user. The
// token claim alone is not trusted: a demoted admin is locked out as
// soon as the database row changes, and any lookup failure denies.
func RequireAdmin(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized: User ID not found",
			"data":    nil,
		})
	}

	var user models.User
	err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = false",
		userID, "ADMIN").First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Server error while checking permissions!",
			"data":    nil,
		})
	}

	return c.Next()
}
