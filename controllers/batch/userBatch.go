package batchController

import (
	"vidya/database"
	"vidya/middleware"
	"vidya/models"
	batchModels "vidya/models/batch"

	"github.com/gofiber/fiber/v2"
)

// syllabusItem is the public shape of a syllabus entry. Video URLs are
// deliberately absent: they are released only by the watch endpoint
// after the entitlement check.
type syllabusItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	NotesURL  string `json:"notesUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// GetMyBatches lists the authenticated user's enrollments
func GetMyBatches(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var enrollments []batchModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Batch").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// GetSyllabus returns the nested subject -> chapter -> content mapping
// of a batch. Students must be enrolled; admins can view any batch.
func GetSyllabus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	batchID := c.Locals("batchID").(int)

	db := database.Database.Db

	var batch batchModels.Batch
	if err := db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	if role != "ADMIN" {
		var enrollment batchModels.Enrollment
		if err := db.Where("user_id = ? AND batch_id = ? AND is_deleted = ?", userID, batchID, false).First(&enrollment).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this batch!", nil)
		}
	}

	var items []batchModels.ContentItem
	if err := db.
		Where("batch_id = ? AND is_deleted = ?", batchID, false).
		Order("subject asc, chapter asc, order_index asc").
		Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch syllabus!", nil)
	}

	syllabus := make(map[string]map[string][]syllabusItem)
	for _, item := range items {
		if syllabus[item.Subject] == nil {
			syllabus[item.Subject] = make(map[string][]syllabusItem)
		}
		syllabus[item.Subject][item.Chapter] = append(syllabus[item.Subject][item.Chapter], syllabusItem{
			ID:        item.ContentID,
			Title:     item.Title,
			Type:      item.ContentType,
			NotesURL:  item.NotesURL,
			CreatedAt: item.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Syllabus fetched successfully!", fiber.Map{
		"batch":    batch,
		"syllabus": syllabus,
	})
}
