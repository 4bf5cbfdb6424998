package videoRoutes

import (
	notesControllers "vidya/controllers/notes"
	quizControllers "vidya/controllers/quiz"
	videoControllers "vidya/controllers/video"
	"vidya/middleware"
	quizValidators "vidya/validators/quiz"
	videoValidators "vidya/validators/video"

	"github.com/gofiber/fiber/v2"
)

// SetupVideoRoutes sets up the per-video watch, notes and quiz routes
func SetupVideoRoutes(app *fiber.App) {
	videoGroup := app.Group("/video")

	videoGroup.Get("/:id/watch", middleware.JWTMiddleware, videoValidators.VideoID(), videoControllers.WatchVideo)
	videoGroup.Get("/:id/notes", middleware.JWTMiddleware, videoValidators.VideoID(), middleware.RequireVideoAccess, notesControllers.GetNotes)
	videoGroup.Get("/:id/quiz", middleware.JWTMiddleware, videoValidators.VideoID(), middleware.RequireVideoAccess, quizControllers.GetQuiz)
	videoGroup.Post("/:id/quiz/score", middleware.JWTMiddleware, videoValidators.VideoID(), middleware.RequireVideoAccess, quizValidators.SubmitScore(), quizControllers.SubmitScore)
}
