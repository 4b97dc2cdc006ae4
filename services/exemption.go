package services

import (
	"time"

	"mentorhub/models/training"

	"gorm.io/gorm"
)

// CompletedCatalogModuleIDs returns the set of catalog modules the user has
// completed in any class of any mentorship. This is the single query the
// exemption check is built on: module_progresses joined back to the user via
// participants, joined to class_modules for the catalog id.
func CompletedCatalogModuleIDs(db *gorm.DB, userID uint) (map[uint]bool, error) {
	var ids []uint
	err := db.Model(&training.ModuleProgress{}).
		Joins("JOIN participants ON participants.id = module_progresses.participant_id").
		Joins("JOIN class_modules ON class_modules.id = module_progresses.class_module_id").
		Where("participants.user_id = ? AND module_progresses.status = ?", userID, training.ProgressCompleted).
		Pluck("class_modules.catalog_module_id", &ids).Error
	if err != nil {
		return nil, err
	}

	completed := make(map[uint]bool, len(ids))
	for _, id := range ids {
		completed[id] = true
	}
	return completed, nil
}

// SeedParticipantProgress creates the initial ModuleProgress row for each
// class module, marking it EXEMPTED when the mentee completed the same
// catalog module elsewhere. The exemption is a snapshot taken at creation
// time; later completions elsewhere never retroactively exempt these rows.
// Existing rows are skipped, so reseeding is idempotent.
func SeedParticipantProgress(tx *gorm.DB, participant training.Participant, modules []training.ClassModule, completed map[uint]bool) (BatchResult, error) {
	result := BatchResult{}
	now := time.Now()

	for _, mod := range modules {
		var existing training.ModuleProgress
		err := tx.Where("participant_id = ? AND class_module_id = ?", participant.ID, mod.ID).
			First(&existing).Error
		if err == nil {
			result.Skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return result, err
		}

		progress := training.ModuleProgress{
			ParticipantID: participant.ID,
			ClassModuleID: mod.ID,
			Status:        training.ProgressNotStarted,
		}
		if completed[mod.CatalogModuleID] {
			progress.Status = training.ProgressExempted
			progress.CompletedInPreviousClass = true
			progress.ExemptedAt = &now
		}
		if err := tx.Create(&progress).Error; err != nil {
			return result, err
		}
		result.Added++
	}
	return result, nil
}

// SeedProgressForModule seeds progress rows for every given participant when
// a module is added to a class that already has enrollees. Each mentee's
// exemption lookup is independent, but the caller runs the whole batch inside
// one transaction so a crash never leaves half the cohort without rows.
func SeedProgressForModule(tx *gorm.DB, classModule training.ClassModule, participants []training.Participant) (BatchResult, error) {
	result := BatchResult{}

	for _, participant := range participants {
		completed, err := CompletedCatalogModuleIDs(tx, participant.UserID)
		if err != nil {
			return result, err
		}
		seeded, err := SeedParticipantProgress(tx, participant, []training.ClassModule{classModule}, completed)
		if err != nil {
			return result, err
		}
		result.Added += seeded.Added
		result.Skipped += seeded.Skipped
	}
	return result, nil
}

// MarkExempted manually exempts a progress record. Manual exemptions carry no
// prior-completion evidence, so they remain clearable.
func MarkExempted(db *gorm.DB, progressID uint) (*training.ModuleProgress, error) {
	var progress training.ModuleProgress
	if err := db.Where("id = ?", progressID).First(&progress).Error; err != nil {
		return nil, &NotFoundError{Entity: "ModuleProgress", ID: progressID}
	}

	if progress.Status == training.ProgressExempted {
		return &progress, nil
	}
	if progress.Status == training.ProgressCompleted {
		return nil, &ConflictError{Reason: "Progress is already completed, exemption is pointless!"}
	}

	now := time.Now()
	progress.Status = training.ProgressExempted
	progress.ExemptedAt = &now
	if err := db.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// ClearExemption reverts a manual exemption back to NOT_STARTED. Exemptions
// backed by verified prior completion are immutable evidence and cannot be
// cleared.
func ClearExemption(db *gorm.DB, progressID uint) (*training.ModuleProgress, error) {
	var progress training.ModuleProgress
	if err := db.Where("id = ?", progressID).First(&progress).Error; err != nil {
		return nil, &NotFoundError{Entity: "ModuleProgress", ID: progressID}
	}

	if progress.Status != training.ProgressExempted {
		return nil, &ValidationError{Reason: "Progress record is not exempted!"}
	}
	if progress.CompletedInPreviousClass {
		return nil, &ConflictError{Reason: "Exemption comes from verified prior completion and cannot be cleared!"}
	}

	progress.Status = training.ProgressNotStarted
	progress.ExemptedAt = nil
	if err := db.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}
