package training

import (
	"time"

	"gorm.io/gorm"
)

// ClassModule statuses.
const (
	ModuleNotStarted = "NOT_STARTED"
	ModuleInProgress = "IN_PROGRESS"
	ModuleCompleted  = "COMPLETED"
)

// ClassModule is the per-class instantiation of a catalog module, carrying
// its own status and ordering. A catalog module may appear at most once per
// class.
type ClassModule struct {
	gorm.Model
	ClassID         uint       `json:"class_id" gorm:"index;not null;uniqueIndex:idx_class_catalog_module"`
	CatalogModuleID uint       `json:"catalog_module_id" gorm:"index;not null;uniqueIndex:idx_class_catalog_module"`
	OrderSequence   int        `json:"order_sequence" gorm:"default:0"`
	Status          string     `json:"status" gorm:"default:'NOT_STARTED'"`
	StartedAt       *time.Time `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
}
