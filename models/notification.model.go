package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationLog records every outcome event handed to the notifier before
// delivery is attempted, so failed webhooks/emails never lose the event
type NotificationLog struct {
	gorm.Model
	EventType string         `json:"event_type" gorm:"index"` // e.g. MODULES_ADDED, OUTCOME_COMPUTED
	Payload   datatypes.JSON `json:"payload"`
	Delivered bool           `json:"delivered" gorm:"default:false"`
	IsDeleted bool           `gorm:"default:false"`
}
