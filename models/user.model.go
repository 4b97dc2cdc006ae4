package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name       string     `gorm:"default:''"`
	Email      string     `gorm:"default:''"`
	Phone      string     `gorm:"index;default:''"`
	Role       string     `gorm:"default:'MENTEE'"` // MENTEE, STAFF, ADMIN
	Password   string     `gorm:"default:''"`
	FacilityID string     `gorm:"default:''"` // Health facility the mentee belongs to
	LastLogin  *time.Time `json:"last_login"`
	IsDeleted  bool       `gorm:"default:false"`
}
