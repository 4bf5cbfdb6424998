package videoController

import (
	"vidya/database"
	"vidya/middleware"
	"vidya/services/content"

	"github.com/gofiber/fiber/v2"
)

// WatchVideo resolves the playable URL for a video. Every request runs
// the full entitlement check again, so revoked access takes effect the
// next time the player reloads.
func WatchVideo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	videoID := c.Locals("videoID").(string)
	fallbackURL := c.Query("fallbackUrl")

	resolver := content.NewResolver(database.Database.Db)
	resolution := resolver.Resolve(c.Context(), videoID, content.Viewer{UserID: userID, Role: role}, fallbackURL)

	switch resolution.Outcome {
	case content.OutcomeGranted:
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Video resolved successfully!", fiber.Map{
			"url":   resolution.URL,
			"title": resolution.Title,
		})
	case content.OutcomeUnavailable:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video unavailable!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this batch!", nil)
	}
}
