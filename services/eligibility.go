package services

import (
	"mentorhub/models"
	"mentorhub/models/training"

	"gorm.io/gorm"
)

// EligibleModules computes which catalog modules may be added to the class
// right now. Excluded are modules already in this class and modules locked by
// COMPLETED sibling classes of the same mentorship; draft or active siblings
// impose no restriction since they may still change. A mentorship with no
// linked program yields an empty list, which is a valid state, not an error.
func EligibleModules(db *gorm.DB, mentorshipID, classID uint) ([]models.CatalogModule, error) {
	var mentorship models.Mentorship
	if err := db.Where("id = ? AND is_deleted = ?", mentorshipID, false).First(&mentorship).Error; err != nil {
		return nil, &NotFoundError{Entity: "Mentorship", ID: mentorshipID}
	}

	var class training.ClassCohort
	if err := db.Where("id = ? AND mentorship_id = ? AND is_deleted = ?", classID, mentorshipID, false).
		First(&class).Error; err != nil {
		return nil, &NotFoundError{Entity: "Class", ID: classID}
	}

	programIDs := []uint{}
	if mentorship.ProgramID != nil {
		programIDs = append(programIDs, *mentorship.ProgramID)
	}
	var links []models.MentorshipProgram
	if err := db.Where("mentorship_id = ? AND is_deleted = ?", mentorshipID, false).Find(&links).Error; err != nil {
		return nil, err
	}
	for _, link := range links {
		if mentorship.ProgramID == nil || link.ProgramID != *mentorship.ProgramID {
			programIDs = append(programIDs, link.ProgramID)
		}
	}
	if len(programIDs) == 0 {
		return []models.CatalogModule{}, nil
	}

	excluded := map[uint]bool{}

	// Modules already in this class
	var inThisClass []uint
	if err := db.Model(&training.ClassModule{}).
		Where("class_id = ?", classID).
		Pluck("catalog_module_id", &inThisClass).Error; err != nil {
		return nil, err
	}
	for _, id := range inThisClass {
		excluded[id] = true
	}

	// Modules locked by completed sibling classes of the same mentorship
	var inCompletedSiblings []uint
	if err := db.Model(&training.ClassModule{}).
		Joins("JOIN class_cohorts ON class_cohorts.id = class_modules.class_id").
		Where("class_cohorts.mentorship_id = ? AND class_cohorts.id != ? AND class_cohorts.status = ?",
			mentorshipID, classID, training.ClassCompleted).
		Pluck("class_modules.catalog_module_id", &inCompletedSiblings).Error; err != nil {
		return nil, err
	}
	for _, id := range inCompletedSiblings {
		excluded[id] = true
	}

	var catalog []models.CatalogModule
	if err := db.Where("program_id IN ? AND is_active = ? AND is_deleted = ?", programIDs, true, false).
		Order("program_id asc, order_index asc").
		Find(&catalog).Error; err != nil {
		return nil, err
	}

	eligible := make([]models.CatalogModule, 0, len(catalog))
	for _, mod := range catalog {
		if !excluded[mod.ID] {
			eligible = append(eligible, mod)
		}
	}
	return eligible, nil
}
