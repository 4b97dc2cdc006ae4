package services

import (
	"time"

	"mentorhub/models/training"

	"gorm.io/gorm"
)

// StartProgress moves a mentee's module progress to IN_PROGRESS. Starting an
// already-started row is a no-op; exempted rows must have their exemption
// cleared first.
func StartProgress(db *gorm.DB, progressID uint) (*training.ModuleProgress, error) {
	var progress training.ModuleProgress
	if err := db.Where("id = ?", progressID).First(&progress).Error; err != nil {
		return nil, &NotFoundError{Entity: "ModuleProgress", ID: progressID}
	}

	switch progress.Status {
	case training.ProgressInProgress:
		return &progress, nil
	case training.ProgressCompleted:
		return nil, &ValidationError{Reason: "Progress is already completed!"}
	case training.ProgressExempted:
		return nil, &ConflictError{Reason: "Progress is exempted, clear the exemption first!"}
	}

	progress.Status = training.ProgressInProgress
	if err := db.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// CompleteProgress finishes a mentee's module progress, stamping CompletedAt
// and recording attendance and assessment score when supplied. Completed rows
// are what the exemption lookup counts for the mentee's later enrollments.
// Completing an already-completed row is a no-op.
func CompleteProgress(db *gorm.DB, progressID uint, attendance, score *float64) (*training.ModuleProgress, error) {
	var progress training.ModuleProgress
	if err := db.Where("id = ?", progressID).First(&progress).Error; err != nil {
		return nil, &NotFoundError{Entity: "ModuleProgress", ID: progressID}
	}

	if progress.Status == training.ProgressCompleted {
		return &progress, nil
	}
	if progress.Status == training.ProgressExempted {
		return nil, &ConflictError{Reason: "Progress is exempted, clear the exemption first!"}
	}

	now := time.Now()
	progress.Status = training.ProgressCompleted
	progress.CompletedAt = &now
	if attendance != nil {
		progress.AttendancePercentage = attendance
	}
	if score != nil {
		progress.AssessmentScore = score
	}
	if err := db.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}
