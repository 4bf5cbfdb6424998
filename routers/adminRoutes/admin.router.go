package adminRoutes

import (
	controllers "vidya/controllers/admin"
	"vidya/middleware"
	validators "vidya/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin upload and quiz builder surface
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin)

	// AI note generator
	adminGroup.Post("/notes/generate", controllers.GenerateNotes)
	adminGroup.Post("/notes/save", validators.SaveNote(), controllers.SaveNotes)

	// Quiz builder (manual and AI extraction)
	adminGroup.Post("/quiz/save", validators.SaveQuiz(), controllers.SaveQuiz)
	adminGroup.Post("/quiz/extract", controllers.ExtractQuiz)
}
