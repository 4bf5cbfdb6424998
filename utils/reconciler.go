package utils

import (
	"log"
	"time"
	"vidya/database"
	batchModels "vidya/models/batch"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logReconciler logs reconciler events with timestamp
func logReconciler(message string) {
	log.Printf("[CONTENT-RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileSecureVideos soft-deletes secure video records whose syllabus
// entry is gone. New writes are transactional, so orphans can only come
// from rows that predate the transactional path; anything created today
// is left alone to avoid touching in-flight admin edits.
func reconcileSecureVideos() {
	db := database.Database.Db
	cutoff := now.BeginningOfDay()

	var orphans []batchModels.SecureVideo
	err := db.
		Where("is_deleted = false AND created_at < ?", cutoff).
		Where("video_id NOT IN (?)", db.Model(&batchModels.ContentItem{}).
			Select("content_id").
			Where("content_type = ? AND is_deleted = false", "VIDEO")).
		Find(&orphans).Error
	if err != nil {
		logReconciler("Error scanning for orphaned secure videos: " + err.Error())
		return
	}

	if len(orphans) == 0 {
		return
	}

	for _, video := range orphans {
		if err := db.Model(&batchModels.SecureVideo{}).
			Where("id = ?", video.ID).
			Update("is_deleted", true).Error; err != nil {
			logReconciler("Error removing orphaned secure video " + video.VideoID + ": " + err.Error())
			continue
		}
		logReconciler("Removed orphaned secure video " + video.VideoID + " (" + video.Title + ")")
	}

	// The reverse case, a VIDEO syllabus entry without a secure record,
	// cannot be repaired automatically because the URL is unknown.
	var missing int64
	db.Model(&batchModels.ContentItem{}).
		Where("content_type = ? AND is_deleted = false", "VIDEO").
		Where("content_id NOT IN (?)", db.Model(&batchModels.SecureVideo{}).
			Select("video_id").
			Where("is_deleted = false")).
		Count(&missing)
	if missing > 0 {
		logReconciler("Warning: " + time.Now().Format("2006-01-02") + ": found video syllabus entries without a secure record, manual re-upload required")
	}
}

// StartReconciler schedules the hourly content reconciliation sweep
func StartReconciler() {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", reconcileSecureVideos); err != nil {
		log.Fatalf("Failed to schedule content reconciler: %v", err)
	}

	c.Start()
	logReconciler("Content reconciler scheduled (hourly)")
}
