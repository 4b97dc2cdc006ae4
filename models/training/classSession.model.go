package training

import (
	"time"

	"gorm.io/gorm"
)

// ClassSession statuses.
const (
	SessionScheduled  = "SCHEDULED"
	SessionInProgress = "IN_PROGRESS"
	SessionCompleted  = "COMPLETED"
	SessionCancelled  = "CANCELLED"
)

// ClassSession is a scheduled occurrence within a class module. TemplateRef
// is nil for custom/ad-hoc sessions.
type ClassSession struct {
	gorm.Model
	ClassModuleID uint       `json:"class_module_id" gorm:"index;not null;uniqueIndex:idx_module_session_number"`
	SessionNumber int        `json:"session_number" gorm:"not null;uniqueIndex:idx_module_session_number"`
	Title         string     `json:"title"`
	Status        string     `json:"status" gorm:"default:'SCHEDULED'"`
	TemplateRef   *uint      `json:"template_ref"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	StartedAt     *time.Time `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
}
