package training

import (
	"time"

	"gorm.io/gorm"
)

// ModuleProgress statuses.
const (
	ProgressNotStarted = "NOT_STARTED"
	ProgressInProgress = "IN_PROGRESS"
	ProgressCompleted  = "COMPLETED"
	ProgressExempted   = "EXEMPTED"
)

// ModuleProgress is the per-(participant, class module) record seeded at
// enrollment time. CompletedInPreviousClass records whether the EXEMPTED
// status came from verified prior completion; such exemptions cannot be
// manually cleared.
type ModuleProgress struct {
	gorm.Model
	ParticipantID            uint       `json:"participant_id" gorm:"index;not null;uniqueIndex:idx_participant_module"`
	ClassModuleID            uint       `json:"class_module_id" gorm:"index;not null;uniqueIndex:idx_participant_module"`
	Status                   string     `json:"status" gorm:"default:'NOT_STARTED'"`
	CompletedInPreviousClass bool       `json:"completed_in_previous_class" gorm:"default:false"`
	ExemptedAt               *time.Time `json:"exempted_at"`
	CompletedAt              *time.Time `json:"completed_at"`
	AttendancePercentage     *float64   `json:"attendance_percentage"`
	AssessmentScore          *float64   `json:"assessment_score"`
}
