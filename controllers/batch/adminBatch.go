package batchController

import (
	"log"
	"vidya/database"
	"vidya/middleware"
	"vidya/models"
	batchModels "vidya/models/batch"
	"vidya/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminCreateBatch creates a new batch (course offering)
func AdminCreateBatch(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBatch").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newBatch := batchModels.Batch{
		Name:        reqData.Name,
		Description: reqData.Description,
		Status:      "ACTIVE",
	}

	if err := database.Database.Db.Create(&newBatch).Error; err != nil {
		log.Printf("Error creating batch: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Batch created successfully!", newBatch)
}

// AdminEnrollStudent enrolls a user into a batch
func AdminEnrollStudent(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)
	reqData, ok := c.Locals("validatedEnroll").(*struct {
		UserID uint `json:"user_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var batch batchModels.Batch
	if err := db.Where("id = ? AND is_deleted = ? AND status = ?", batchID, false, "ACTIVE").First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found or not active!", nil)
	}

	// Check if user is already enrolled
	var existing batchModels.Enrollment
	if err := db.Where("user_id = ? AND batch_id = ? AND is_deleted = ?", reqData.UserID, batchID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this batch!", nil)
	}

	enrollment := batchModels.Enrollment{
		UserID:  reqData.UserID,
		BatchID: uint(batchID),
		Status:  "ENROLLED",
	}

	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll user!", nil)
	}

	go func(u models.User, batchName string) {
		if err := utils.SendEnrollmentEmail(u.Name, u.Email, batchName); err != nil {
			log.Printf("Error sending enrollment email to %s: %v", u.Email, err)
		}
	}(user, batch.Name)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User enrolled successfully!", enrollment)
}

// AdminAddContent adds a syllabus entry to a batch. For videos the
// playable URL goes into a separate secure record; both rows are written
// in one transaction so a failure cannot leave an orphan.
func AdminAddContent(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)
	reqData, ok := c.Locals("validatedContent").(*struct {
		Subject     string `json:"subject"`
		Chapter     string `json:"chapter"`
		Title       string `json:"title"`
		ContentType string `json:"type"`
		URL         string `json:"url"`
		NotesURL    string `json:"notes_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var batch batchModels.Batch
	if err := db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	contentID := uuid.NewString()

	// Next position within the chapter
	var maxOrder int
	db.Model(&batchModels.ContentItem{}).
		Where("batch_id = ? AND subject = ? AND chapter = ? AND is_deleted = ?", batchID, reqData.Subject, reqData.Chapter, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	item := batchModels.ContentItem{
		ContentID:   contentID,
		BatchID:     uint(batchID),
		Subject:     reqData.Subject,
		Chapter:     reqData.Chapter,
		Title:       reqData.Title,
		ContentType: reqData.ContentType,
		NotesURL:    reqData.NotesURL,
		OrderIndex:  maxOrder + 1,
	}

	tx := db.Begin()
	if reqData.ContentType == "VIDEO" {
		secure := batchModels.SecureVideo{
			VideoID: contentID,
			URL:     reqData.URL,
			BatchID: uint(batchID),
			Title:   reqData.Title,
		}
		if err := tx.Create(&secure).Error; err != nil {
			tx.Rollback()
			log.Printf("Error creating secure video record: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add content!", nil)
		}
	}
	if err := tx.Create(&item).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating content item: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add content!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content added successfully!", item)
}

// AdminDeleteContent removes a syllabus entry and, for videos, its
// secure record in the same transaction
func AdminDeleteContent(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)
	contentID := c.Locals("contentID").(string)

	db := database.Database.Db

	var item batchModels.ContentItem
	if err := db.Where("content_id = ? AND batch_id = ? AND is_deleted = ?", contentID, batchID, false).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	tx := db.Begin()
	if err := tx.Model(&batchModels.ContentItem{}).
		Where("id = ?", item.ID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}
	if item.ContentType == "VIDEO" {
		if err := tx.Model(&batchModels.SecureVideo{}).
			Where("video_id = ?", item.ContentID).
			Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}

// AdminGetBatches lists all batches
func AdminGetBatches(c *fiber.Ctx) error {
	var batches []batchModels.Batch
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&batches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch batches!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batches fetched successfully!", batches)
}
