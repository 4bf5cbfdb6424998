package notesRoutes

import (
	controllers "vidya/controllers/notes"
	"vidya/middleware"
	validators "vidya/validators/notes"

	"github.com/gofiber/fiber/v2"
)

// SetupTutorRoutes sets up the AI tutor
func SetupTutorRoutes(app *fiber.App) {
	tutorGroup := app.Group("/tutor", middleware.JWTMiddleware)

	tutorGroup.Post("/ask", validators.AskTutor(), controllers.AskTutor)
}
