package batchValidator

import (
	"strconv"
	"strings"
	"vidya/middleware"

	"github.com/gofiber/fiber/v2"
)

// parseBatchID validates the :id path parameter and parks it in locals
func parseBatchID(c *fiber.Ctx, param string) (int, bool) {
	raw := strings.TrimSpace(c.Params(param))
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func CreateBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Name == "" {
			errors["name"] = "Batch name is required!"
		} else if len(reqData.Name) < 3 {
			errors["name"] = "Batch name must be at least 3 characters long!"
		} else if len(reqData.Name) > 100 {
			errors["name"] = "Batch name must not exceed 100 characters!"
		}

		if len(reqData.Description) > 1000 {
			errors["description"] = "Description must not exceed 1000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBatch", reqData)
		return c.Next()
	}
}

func EnrollStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		batchID, ok := parseBatchID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid batch ID is required in the URL!", nil)
		}

		reqData := new(struct {
			UserID uint `json:"user_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.UserID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"user_id": "User ID is required!"})
		}

		c.Locals("batchID", batchID)
		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func AddContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		batchID, ok := parseBatchID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid batch ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Subject     string `json:"subject"`
			Chapter     string `json:"chapter"`
			Title       string `json:"title"`
			ContentType string `json:"type"`
			URL         string `json:"url"`
			NotesURL    string `json:"notes_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Subject = strings.TrimSpace(reqData.Subject)
		reqData.Chapter = strings.TrimSpace(reqData.Chapter)
		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentType = strings.ToUpper(strings.TrimSpace(reqData.ContentType))
		reqData.URL = strings.TrimSpace(reqData.URL)
		reqData.NotesURL = strings.TrimSpace(reqData.NotesURL)

		if reqData.Subject == "" {
			errors["subject"] = "Subject is required!"
		}
		if reqData.Chapter == "" {
			errors["chapter"] = "Chapter is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}

		switch reqData.ContentType {
		case "VIDEO":
			if reqData.URL == "" {
				errors["url"] = "A video URL is required for video content!"
			}
		case "NOTE":
			if reqData.NotesURL == "" {
				errors["notes_url"] = "A notes URL is required for note content!"
			}
		default:
			errors["type"] = "Content type must be VIDEO or NOTE!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("batchID", batchID)
		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

func DeleteContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		batchID, ok := parseBatchID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid batch ID is required in the URL!", nil)
		}

		contentID := strings.TrimSpace(c.Params("content_id"))
		if contentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content ID is required in the URL!", nil)
		}

		c.Locals("batchID", batchID)
		c.Locals("contentID", contentID)
		return c.Next()
	}
}

func GetSyllabus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		batchID, ok := parseBatchID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid batch ID is required in the URL!", nil)
		}

		c.Locals("batchID", batchID)
		return c.Next()
	}
}
