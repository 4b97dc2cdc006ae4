package training

import (
	"time"

	"gorm.io/gorm"
)

// ClassCohort statuses. Transitions are monotonic and enforced by the
// lifecycle service.
const (
	ClassDraft     = "DRAFT"
	ClassActive    = "ACTIVE"
	ClassCompleted = "COMPLETED"
	ClassCancelled = "CANCELLED"
)

// ClassCohort is a time-boxed group of mentees progressing together through
// a mentorship
type ClassCohort struct {
	gorm.Model
	MentorshipID uint       `json:"mentorship_id" gorm:"index;not null"`
	Name         string     `json:"name"`
	Status       string     `json:"status" gorm:"default:'DRAFT'"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	CreatedBy    uint       `json:"created_by"`
	IsDeleted    bool       `gorm:"default:false"`
}
