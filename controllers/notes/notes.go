package notesController

import (
	"errors"
	"fmt"
	"log"
	"vidya/config"
	"vidya/middleware"
	"vidya/services/gemini"
	"vidya/services/notes"
	"vidya/services/sheet"

	"github.com/gofiber/fiber/v2"
)

// GetNotes fetches the note payload for a video from the sheet backend
// and normalizes it to displayable content. Document references are
// flagged so the client can route to an external viewer.
func GetNotes(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(string)

	client := sheet.NewClient(config.AppConfig.SheetScriptURL)
	raw, err := client.GetNotes(c.Context(), videoID)
	if err != nil {
		log.Printf("Error fetching notes for %s: %v", videoID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Notes backend is unreachable!", nil)
	}

	note, err := notes.Normalize(raw)
	if err != nil {
		if errors.Is(err, notes.ErrUnparseableNote) {
			// Degrade to empty content instead of failing the view, but
			// report the shape problem so it is distinguishable from an
			// empty note.
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes are in an unsupported format!", notes.Note{})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read notes!", nil)
	}

	if note.Content == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No notes uploaded yet.", note)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes fetched successfully!", note)
}

// AskTutor answers a student doubt with the video context embedded in
// the prompt. No conversation state is kept server side; the client
// resends whatever context matters per question.
func AskTutor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDoubt").(*struct {
		Doubt      string `json:"doubt"`
		VideoTitle string `json:"video_title"`
		Subject    string `json:"subject"`
		Timestamp  int    `json:"timestamp"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := gemini.NewClient(config.AppConfig.GeminiBaseURL, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if !client.Configured() {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "AI service is not configured!", nil)
	}

	subject := reqData.Subject
	if subject == "" {
		subject = "General"
	}

	prompt := fmt.Sprintf(`You are an expert tutor.
Context:
- Video Title: %s
- Subject: %s
- Time into video: %d seconds

Student Doubt: "%s"

Please provide a clear, concise, and helpful explanation suitable for a student.`,
		reqData.VideoTitle, subject, reqData.Timestamp, reqData.Doubt)

	answer, err := client.Generate(c.Context(), gemini.Text(prompt))
	if err != nil {
		log.Printf("Tutor generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "AI is unable to answer right now. Please try again later.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer generated!", fiber.Map{
		"answer": answer,
	})
}
