package middleware

import (
	"vidya/database"
	"vidya/services/content"

	"github.com/gofiber/fiber/v2"
)

// RequireVideoAccess gates per-video endpoints (notes, quiz, score) on
// the same entitlement check as the watch endpoint. Videos without a
// secure record pass through: legacy ungated content can still carry
// notes and quizzes.
func RequireVideoAccess(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	videoID, ok := c.Locals("videoID").(string)
	if !ok {
		return JsonResponse(c, fiber.StatusBadRequest, false, "Video ID is required in the URL!", nil)
	}

	resolver := content.NewResolver(database.Database.Db)
	resolution := resolver.Resolve(c.Context(), videoID, content.Viewer{UserID: userID, Role: role}, "")

	if resolution.Outcome == content.OutcomeDenied {
		return JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this batch!", nil)
	}

	return c.Next()
}
