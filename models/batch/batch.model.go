package batch

import "gorm.io/gorm"

// Batch represents a course offering with its own syllabus tree
type Batch struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE
	IsDeleted   bool   `gorm:"default:false"`
}

// Enrollment links a student to a batch. A user's enrolled-batch set
// is the set of their non-deleted enrollment rows.
type Enrollment struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	BatchID   uint   `json:"batch_id" gorm:"index;not null"`
	Status    string `json:"status" gorm:"default:'ENROLLED'"`
	IsDeleted bool   `gorm:"default:false"`
	Batch     Batch  `json:"batch" gorm:"foreignKey:BatchID"`
}
