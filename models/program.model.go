package models

import "gorm.io/gorm"

// Program represents a curriculum program that catalog modules belong to
type Program struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE
	IsDeleted   bool   `gorm:"default:false"`
}

// CatalogModule is a reusable curriculum unit defined at the program level,
// independent of any specific class
type CatalogModule struct {
	gorm.Model
	ProgramID   uint   `json:"program_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}

// MentorshipProgram links a mentorship to additional programs beyond its
// primary one
type MentorshipProgram struct {
	gorm.Model
	MentorshipID uint `json:"mentorship_id" gorm:"index;not null;uniqueIndex:idx_mentorship_program"`
	ProgramID    uint `json:"program_id" gorm:"index;not null;uniqueIndex:idx_mentorship_program"`
	IsDeleted    bool `gorm:"default:false"`
}
