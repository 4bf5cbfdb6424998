package batch

import "gorm.io/gorm"

// ContentItem is one entry of a batch syllabus, addressed by subject and
// chapter. The nested syllabus mapping returned to clients is assembled
// from these rows ordered by OrderIndex.
type ContentItem struct {
	gorm.Model
	ContentID   string `json:"id" gorm:"uniqueIndex;not null"` // public uuid, shared with SecureVideo for videos
	BatchID     uint   `json:"batch_id" gorm:"index;not null"`
	Subject     string `json:"subject" gorm:"index;not null"`
	Chapter     string `json:"chapter" gorm:"index;not null"`
	Title       string `json:"title"`
	ContentType string `json:"type" gorm:"default:'VIDEO'"` // VIDEO, NOTE
	NotesURL    string `json:"notes_url"`                   // for NOTE type
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsDeleted   bool   `gorm:"default:false"`
}

// SecureVideo holds the playable URL for a video content item. The URL is
// never stored on the syllabus row itself; it is released only after the
// viewer's entitlement has been checked. Written and deleted in the same
// transaction as its ContentItem.
type SecureVideo struct {
	gorm.Model
	VideoID   string `json:"video_id" gorm:"uniqueIndex;not null"`
	URL       string `json:"url" gorm:"not null"`
	BatchID   uint   `json:"batch_id" gorm:"index;not null"`
	Title     string `json:"title"`
	IsDeleted bool   `gorm:"default:false"`
}
