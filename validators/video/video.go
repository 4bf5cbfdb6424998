package videoValidator

import (
	"strings"
	"vidya/middleware"

	"github.com/gofiber/fiber/v2"
)

// VideoID validates the :id path parameter shared by the watch, notes
// and quiz endpoints
func VideoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		videoID := strings.TrimSpace(c.Params("id"))
		if videoID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video ID is required in the URL!", nil)
		}
		if len(videoID) > 64 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video ID is not valid!", nil)
		}

		c.Locals("videoID", videoID)
		return c.Next()
	}
}
