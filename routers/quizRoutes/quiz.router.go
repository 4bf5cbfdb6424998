package quizRoutes

import (
	controllers "vidya/controllers/quiz"
	"vidya/middleware"
	validators "vidya/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up AI practice quiz generation and helpers
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz", middleware.JWTMiddleware)

	quizGroup.Post("/generate", validators.GenerateQuiz(), controllers.GenerateQuiz)
	quizGroup.Post("/document", controllers.DocumentQuiz)
	quizGroup.Post("/hint", validators.HintRequest(), controllers.GetHint)
	quizGroup.Post("/feedback", validators.FeedbackRequest(), controllers.GetFeedback)
}
