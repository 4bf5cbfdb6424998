package content

import (
	"context"
	"errors"
	"log"
	"vidya/models"
	batchModels "vidya/models/batch"

	"gorm.io/gorm"
)

// Outcome is the result kind of a video access resolution
type Outcome string

const (
	OutcomeGranted     Outcome = "GRANTED"
	OutcomeDenied      Outcome = "DENIED"
	OutcomeUnavailable Outcome = "UNAVAILABLE"
)

// Viewer identifies who is asking for the video
type Viewer struct {
	UserID uint
	Role   string // STUDENT, ADMIN
}

// Resolution is the single answer of a resolve call: exactly one of a
// playable URL, a denial, or unavailable.
type Resolution struct {
	Outcome Outcome `json:"outcome"`
	URL     string  `json:"url,omitempty"`
	Title   string  `json:"title,omitempty"`
}

// Resolver decides, per video and per viewer, whether a playable URL may
// be released. Read-only over the store; every call re-runs the full
// check so revocations take effect on the next view.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve looks up the secure record for videoID and checks the viewer's
// entitlement. Store failures other than a clean record-not-found map to
// a denial, never to an error: an ambiguous check must fail closed.
func (r *Resolver) Resolve(ctx context.Context, videoID string, viewer Viewer, fallbackURL string) Resolution {
	var video batchModels.SecureVideo
	err := r.db.WithContext(ctx).
		Where("video_id = ? AND is_deleted = false", videoID).
		First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Legacy ungated content carries its URL in navigation state.
			if fallbackURL != "" {
				return Resolution{Outcome: OutcomeGranted, URL: fallbackURL}
			}
			return Resolution{Outcome: OutcomeUnavailable}
		}
		log.Printf("Resolver: video lookup failed for %s: %v", videoID, err)
		return Resolution{Outcome: OutcomeDenied}
	}

	if viewer.Role == "ADMIN" {
		return Resolution{Outcome: OutcomeGranted, URL: video.URL, Title: video.Title}
	}

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = false", viewer.UserID).
		First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Resolver: user lookup failed for %d: %v", viewer.UserID, err)
		}
		return Resolution{Outcome: OutcomeDenied}
	}

	var enrollment batchModels.Enrollment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND batch_id = ? AND is_deleted = false", viewer.UserID, video.BatchID).
		First(&enrollment).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Resolver: enrollment lookup failed for user %d batch %d: %v", viewer.UserID, video.BatchID, err)
		}
		return Resolution{Outcome: OutcomeDenied}
	}

	return Resolution{Outcome: OutcomeGranted, URL: video.URL, Title: video.Title}
}
