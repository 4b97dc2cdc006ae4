package training

import (
	"time"

	"gorm.io/gorm"
)

// Participant statuses.
const (
	ParticipantEnrolled  = "ENROLLED"
	ParticipantActive    = "ACTIVE"
	ParticipantCompleted = "COMPLETED"
	ParticipantDropped   = "DROPPED"
)

// Overall outcome values derived by the scoring engine.
const (
	OutcomePassed     = "PASSED"
	OutcomeFailed     = "FAILED"
	OutcomeIncomplete = "INCOMPLETE"
)

// Participant tracks a mentee's enrollment in a class. The Overall* fields
// are derived by the scoring engine once every configured category has a
// recorded result; they are never written directly by controllers.
type Participant struct {
	gorm.Model
	ClassID        uint       `json:"class_id" gorm:"index;not null;uniqueIndex:idx_class_user"`
	UserID         uint       `json:"user_id" gorm:"index;not null;uniqueIndex:idx_class_user"`
	Status         string     `json:"status" gorm:"default:'ENROLLED'"`
	OverallStatus  string     `json:"overall_status" gorm:"default:''"` // PASSED, FAILED, empty until all assessed
	OverallScore   *float64   `json:"overall_score"`
	CompletedAt    *time.Time `json:"completed_at"`
	CompletionCode string     `json:"completion_code" gorm:"default:''"` // Issued when the outcome is finalized
	EnrolledBy     uint       `json:"enrolled_by"`
}
