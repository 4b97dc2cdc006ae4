package services

import (
	"mentorhub/models"
	"mentorhub/models/training"

	"gorm.io/gorm"
)

// AddModulesToClass bulk-adds catalog modules to a class. Modules already in
// the class or excluded by eligibility are silently skipped and counted;
// unknown catalog ids count as failed. New rows get contiguous order
// sequences and progress rows are seeded for every current enrollee. The
// whole batch commits atomically.
func AddModulesToClass(db *gorm.DB, classID uint, catalogModuleIDs []uint) (BatchResult, []training.ClassModule, error) {
	result := BatchResult{}

	var class training.ClassCohort
	if err := db.Where("id = ? AND is_deleted = ?", classID, false).First(&class).Error; err != nil {
		return result, nil, &NotFoundError{Entity: "Class", ID: classID}
	}
	if class.Status == training.ClassCompleted || class.Status == training.ClassCancelled {
		return result, nil, &ValidationError{Reason: "Cannot add modules to a " + class.Status + " class!"}
	}

	eligible, err := EligibleModules(db, class.MentorshipID, classID)
	if err != nil {
		return result, nil, err
	}
	eligibleByID := make(map[uint]bool, len(eligible))
	for _, mod := range eligible {
		eligibleByID[mod.ID] = true
	}

	var participants []training.Participant
	if err := db.Where("class_id = ? AND status NOT IN ?", classID,
		[]string{training.ParticipantDropped}).Find(&participants).Error; err != nil {
		return result, nil, err
	}

	var added []training.ClassModule
	err = db.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		tx.Model(&training.ClassModule{}).Where("class_id = ?", classID).
			Select("COALESCE(MAX(order_sequence), 0)").Scan(&maxOrder)

		for _, catalogID := range catalogModuleIDs {
			var catalog models.CatalogModule
			if err := tx.Where("id = ? AND is_deleted = ?", catalogID, false).First(&catalog).Error; err != nil {
				result.Failed++
				continue
			}
			if !eligibleByID[catalogID] {
				// Already in this class or locked by a completed sibling
				result.Skipped++
				continue
			}

			maxOrder++
			module := training.ClassModule{
				ClassID:         classID,
				CatalogModuleID: catalogID,
				OrderSequence:   maxOrder,
				Status:          training.ModuleNotStarted,
			}
			if err := tx.Create(&module).Error; err != nil {
				return err
			}
			result.Added++
			added = append(added, module)

			if _, err := SeedProgressForModule(tx, module, participants); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return BatchResult{}, nil, err
	}
	return result, added, nil
}

// PopulateClassModules pre-populates a freshly created class with every
// eligible catalog module of its mentorship.
func PopulateClassModules(db *gorm.DB, class training.ClassCohort) (BatchResult, error) {
	eligible, err := EligibleModules(db, class.MentorshipID, class.ID)
	if err != nil {
		return BatchResult{}, err
	}

	ids := make([]uint, 0, len(eligible))
	for _, mod := range eligible {
		ids = append(ids, mod.ID)
	}
	if len(ids) == 0 {
		return BatchResult{}, nil
	}

	result, _, err := AddModulesToClass(db, class.ID, ids)
	return result, err
}

// ReorderClassModules rewrites the order sequence of a class's modules. The
// given ids must be exactly the class's current modules.
func ReorderClassModules(db *gorm.DB, classID uint, orderedModuleIDs []uint) error {
	var modules []training.ClassModule
	if err := db.Where("class_id = ?", classID).Find(&modules).Error; err != nil {
		return err
	}
	if len(modules) == 0 {
		return &NotFoundError{Entity: "Class", ID: classID}
	}

	current := make(map[uint]bool, len(modules))
	for _, mod := range modules {
		current[mod.ID] = true
	}
	if len(orderedModuleIDs) != len(modules) {
		return &ValidationError{Reason: "Reorder must list every module of the class exactly once!"}
	}
	seen := make(map[uint]bool, len(orderedModuleIDs))
	for _, id := range orderedModuleIDs {
		if !current[id] || seen[id] {
			return &ValidationError{Reason: "Reorder must list every module of the class exactly once!"}
		}
		seen[id] = true
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedModuleIDs {
			if err := tx.Model(&training.ClassModule{}).Where("id = ?", id).
				Update("order_sequence", position+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
