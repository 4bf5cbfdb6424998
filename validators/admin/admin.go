package adminValidator

import (
	"strings"
	"vidya/middleware"
	"vidya/services/quiz"

	"github.com/gofiber/fiber/v2"
)

func SaveNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VideoID    string `json:"video_id"`
			VideoTitle string `json:"video_title"`
			Text       string `json:"text"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.VideoID = strings.TrimSpace(reqData.VideoID)
		reqData.VideoTitle = strings.TrimSpace(reqData.VideoTitle)

		if reqData.VideoID == "" {
			errors["video_id"] = "Video ID is required!"
		}
		if reqData.VideoTitle == "" {
			errors["video_title"] = "Video title is required!"
		}
		// Note text keeps its formatting verbatim; only emptiness is checked
		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Note text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSaveNote", reqData)
		return c.Next()
	}
}

func SaveQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VideoID   string          `json:"video_id"`
			Questions []quiz.Question `json:"questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.VideoID = strings.TrimSpace(reqData.VideoID)
		if reqData.VideoID == "" {
			errors["video_id"] = "Video ID is required!"
		}
		if err := quiz.ValidateQuestions(reqData.Questions); err != nil {
			errors["questions"] = "Each question needs text, four options and a correct answer of A, B, C or D!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSaveQuiz", reqData)
		return c.Next()
	}
}
