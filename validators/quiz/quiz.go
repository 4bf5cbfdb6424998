package quizValidator

import (
	"strings"
	"vidya/middleware"

	"github.com/gofiber/fiber/v2"
)

func SubmitScore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VideoTitle string `json:"video_title"`
			Score      int    `json:"score"`
			Total      int    `json:"total"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Total < 1 {
			errors["total"] = "Total question count must be at least 1!"
		}
		if reqData.Score < 0 || reqData.Score > reqData.Total {
			errors["score"] = "Score must be between 0 and the total!"
		}
		if strings.TrimSpace(reqData.VideoTitle) == "" {
			errors["video_title"] = "Video title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedScore", reqData)
		return c.Next()
	}
}

func GenerateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Topic      string `json:"topic"`
			Count      int    `json:"count"`
			Difficulty string `json:"difficulty"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Topic = strings.TrimSpace(reqData.Topic)
		reqData.Difficulty = strings.ToLower(strings.TrimSpace(reqData.Difficulty))

		if reqData.Topic == "" {
			errors["topic"] = "Topic is required!"
		}
		if reqData.Count < 1 {
			reqData.Count = 5
		}
		if reqData.Count > 20 {
			errors["count"] = "At most 20 questions can be generated per set!"
		}
		switch reqData.Difficulty {
		case "":
			reqData.Difficulty = "moderate"
		case "easy", "moderate", "hard":
		default:
			errors["difficulty"] = "Difficulty must be easy, moderate or hard!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

func HintRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Question string `json:"question"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Question = strings.TrimSpace(reqData.Question)
		if reqData.Question == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"question": "Question text is required!"})
		}

		c.Locals("validatedHint", reqData)
		return c.Next()
	}
}

func FeedbackRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VideoTitle string `json:"video_title"`
			Score      int    `json:"score"`
			Total      int    `json:"total"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Total < 1 {
			errors["total"] = "Total question count must be at least 1!"
		}
		if reqData.Score < 0 || reqData.Score > reqData.Total {
			errors["score"] = "Score must be between 0 and the total!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}
