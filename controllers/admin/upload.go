package adminController

import (
	"log"
	"vidya/config"
	"vidya/middleware"
	"vidya/services/gemini"
	"vidya/services/quiz"
	"vidya/services/sheet"
	"vidya/utils"

	"github.com/gofiber/fiber/v2"
)

// GenerateNotes turns an uploaded board image or PDF into structured
// study notes. The AI text is returned verbatim, markdown included;
// nothing is persisted until the admin reviews and saves it.
func GenerateNotes(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please attach a file!", nil)
	}

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

	notesText, err := client.Generate(c.Context(),
		gemini.Inline(mimeType, utils.EncodeBase64(data)),
		gemini.Text("Create concise and structured study notes from this image. Use headings, bullet points, and highlight key concepts."),
	)
	if err != nil {
		log.Printf("Notes generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "AI could not generate notes. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes generated successfully!", fiber.Map{
		"notes": notesText,
	})
}

// SaveNotes stores reviewed note text against a video in the sheet
func SaveNotes(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSaveNote").(*struct {
		VideoID    string `json:"video_id"`
		VideoTitle string `json:"video_title"`
		Text       string `json:"text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := sheet.NewClient(config.AppConfig.SheetScriptURL)
	if err := client.SaveNote(c.Context(), reqData.VideoID, reqData.VideoTitle, reqData.Text); err != nil {
		log.Printf("Error saving note for %s: %v", reqData.VideoID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to save notes to the sheet!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes saved successfully!", nil)
}

// SaveQuiz stores a manually built or AI-extracted question set
func SaveQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSaveQuiz").(*struct {
		VideoID   string          `json:"video_id"`
		Questions []quiz.Question `json:"questions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := sheet.NewClient(config.AppConfig.SheetScriptURL)
	if err := client.SaveQuiz(c.Context(), reqData.VideoID, reqData.Questions); err != nil {
		log.Printf("Error saving quiz for %s: %v", reqData.VideoID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to save quiz to the sheet!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz saved successfully!", nil)
}

// ExtractQuiz runs AI extraction over an uploaded image or PDF and
// returns the questions for review. They are saved separately once the
// admin is happy with them.
func ExtractQuiz(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please attach a file!", nil)
	}

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
		gemini.Text(quiz.DocumentPrompt(20)),
	)
	if err != nil {
		log.Printf("Quiz extraction failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "AI could not process the document. Please try again.", nil)
	}

	questions, err := quiz.Parse(text)
	if err != nil {
		log.Printf("Quiz extraction coercion failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "AI returned an unusable quiz. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz extracted successfully!", questions)
}
