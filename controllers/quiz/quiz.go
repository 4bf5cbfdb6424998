package quizController

import (
	"errors"
	"log"
	"strconv"
	"vidya/config"
	"vidya/middleware"
	"vidya/services/gemini"
	"vidya/services/quiz"
	"vidya/services/sheet"
	"vidya/utils"

	"github.com/gofiber/fiber/v2"
)

// GetQuiz returns the sheet-stored quiz linked to a video
func GetQuiz(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(string)

	client := sheet.NewClient(config.AppConfig.SheetScriptURL)
	questions, err := client.GetQuiz(c.Context(), videoID)
	if err != nil {
		log.Printf("Error fetching quiz for %s: %v", videoID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Quiz backend is unreachable!", nil)
	}

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No quiz found for this video.", []quiz.Question{})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", questions)
}

// SubmitScore persists a finished regular-mode quiz result. AI-generated
// practice sets are never persisted; the client only calls this for
// sheet quizzes.
func SubmitScore(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	name, _ := c.Locals("name").(string)
	videoID := c.Locals("videoID").(string)

	reqData, ok := c.Locals("validatedScore").(*struct {
		VideoTitle string `json:"video_title"`
		Score      int    `json:"score"`
		Total      int    `json:"total"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := sheet.NewClient(config.AppConfig.SheetScriptURL)
	uid := utils.FormatUserID(userID)
	if err := client.SaveQuizScore(c.Context(), name, uid, reqData.VideoTitle, reqData.Score, reqData.Total); err != nil {
		log.Printf("Error saving quiz score for %s (video %s): %v", uid, videoID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to save quiz result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz result saved!", nil)
}

// GenerateQuiz builds an AI practice set on a topic. Nothing is stored;
// the caller may retry on failure.
func GenerateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGenerate").(*struct {
		Topic      string `json:"topic"`
		Count      int    `json:"count"`
		Difficulty string `json:"difficulty"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := gemini.NewClient(config.AppConfig.GeminiBaseURL, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if !client.Configured() {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "AI service is not configured!", nil)
	}

	prompt := quiz.TopicPrompt(reqData.Topic, reqData.Count, reqData.Difficulty)
	text, err := client.Generate(c.Context(), gemini.Text(prompt))
	if err != nil {
		log.Printf("Quiz generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "AI is unable to generate a quiz right now. Please try again.", nil)
	}

	questions, err := quiz.Parse(text)
	if err != nil {
		log.Printf("Quiz coercion failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "AI returned an unusable quiz. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz generated successfully!", questions)
}

// DocumentQuiz builds a quiz from an uploaded image or PDF. An optional
// count form field sets the question count, bounded like /quiz/generate.
func DocumentQuiz(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please attach a file!", nil)
	}

	requested, _ := strconv.Atoi(c.FormValue("count"))
	count := quiz.ClampCount(requested)

	data, mimeType, err := utils.ReadUploadedFile(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	if !utils.IsSupportedDocumentType(mimeType) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only images and PDF files are supported!", nil)
	}

	client := gemini.NewClient(config.AppConfig.GeminiBaseURL, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if !client.Configured() {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "AI service is not configured!", nil)
	}

	text, err := client.Generate(c.Context(),
		gemini.Inline(mimeType, utils.EncodeBase64(data)),
		gemini.Text(quiz.DocumentPrompt(count)),
	)
	if err != nil {
		log.Printf("Document quiz generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "AI could not process the document. Please try again.", nil)
	}

	questions, err := quiz.Parse(text)
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidAIResponse) {
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Could not extract questions from the document.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process AI response!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz generated from document!", questions)
}

// GetHint asks for a nudge on one question without revealing the answer
func GetHint(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedHint").(*struct {
		Question string `json:"question"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := gemini.NewClient(config.AppConfig.GeminiBaseURL, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if !client.Configured() {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "AI service is not configured!", nil)
	}

	hint, err := client.Generate(c.Context(), gemini.Text(quiz.HintPrompt(reqData.Question)))
	if err != nil {
		// Fall back to a generic nudge
		hint = "Think about the key concepts discussed in the video."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hint generated!", fiber.Map{
		"hint": hint,
	})
}

// GetFeedback asks for short encouragement after a finished quiz
func GetFeedback(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFeedback").(*struct {
		VideoTitle string `json:"video_title"`
		Score      int    `json:"score"`
		Total      int    `json:"total"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := gemini.NewClient(config.AppConfig.GeminiBaseURL, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if !client.Configured() {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "AI service is not configured!", nil)
	}

	feedback, err := client.Generate(c.Context(), gemini.Text(quiz.FeedbackPrompt(reqData.Score, reqData.Total, reqData.VideoTitle)))
	if err != nil {
		feedback = "Excellent attempt! Keep learning."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback generated!", fiber.Map{
		"feedback": feedback,
	})
}
