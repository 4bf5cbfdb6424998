package notesValidator

import (
	"strings"
	"vidya/middleware"

	"github.com/gofiber/fiber/v2"
)

func AskTutor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Doubt      string `json:"doubt"`
			VideoTitle string `json:"video_title"`
			Subject    string `json:"subject"`
			Timestamp  int    `json:"timestamp"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Doubt = strings.TrimSpace(reqData.Doubt)
		reqData.VideoTitle = strings.TrimSpace(reqData.VideoTitle)
		reqData.Subject = strings.TrimSpace(reqData.Subject)

		if reqData.Doubt == "" {
			errors["doubt"] = "Doubt text is required!"
		} else if len(reqData.Doubt) > 2000 {
			errors["doubt"] = "Doubt must not exceed 2000 characters!"
		}
		if reqData.Timestamp < 0 {
			reqData.Timestamp = 0
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDoubt", reqData)
		return c.Next()
	}
}
