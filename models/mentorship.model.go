package models

import "gorm.io/gorm"

// Mentorship is a facility-based training program instance, the top-level
// entity classes hang off
type Mentorship struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	FacilityID  string `json:"facility_id"`
	ProgramID   *uint  `json:"program_id" gorm:"index"` // Primary program, optional
	Status      string `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE
	IsDeleted   bool   `gorm:"default:false"`
}

// AssessmentCategory is a catalog-level assessment area (e.g. clinical skills,
// knowledge test) referenced by mentorship weight configurations
type AssessmentCategory struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDeleted   bool   `gorm:"default:false"`
}

// MentorshipCategory carries the weight configuration of one assessment
// category within a mentorship. Active weights must sum to 100 when written;
// services.SyncCategoryWeights enforces that before any row is touched.
type MentorshipCategory struct {
	gorm.Model
	MentorshipID     uint    `json:"mentorship_id" gorm:"index;not null;uniqueIndex:idx_mentorship_category"`
	CategoryID       uint    `json:"category_id" gorm:"index;not null;uniqueIndex:idx_mentorship_category"`
	WeightPercentage float64 `json:"weight_percentage" gorm:"default:0"`
	PassThreshold    float64 `json:"pass_threshold" gorm:"default:0"`
	IsRequired       bool    `json:"is_required" gorm:"default:false"`
	IsActive         bool    `json:"is_active" gorm:"default:true"`
	IsDeleted        bool    `gorm:"default:false"`
}
