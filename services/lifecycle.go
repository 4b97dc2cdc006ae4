package services

import (
	"fmt"
	"log"
	"time"

	"mentorhub/models/training"

	"gorm.io/gorm"
)

// Allowed forward transitions per state machine. Anything not listed here is
// rejected; corrective admin rollbacks are out of scope.
var classTransitions = map[string][]string{
	training.ClassDraft:  {training.ClassActive, training.ClassCancelled},
	training.ClassActive: {training.ClassCompleted, training.ClassCancelled},
}

var sessionTransitions = map[string][]string{
	training.SessionScheduled:  {training.SessionInProgress, training.SessionCancelled},
	training.SessionInProgress: {training.SessionCompleted, training.SessionCancelled},
}

func allows(table map[string][]string, from, to string) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionClass moves a class cohort to the target status. Requesting the
// current status is a no-op returning the class unchanged.
func TransitionClass(db *gorm.DB, classID uint, target string) (*training.ClassCohort, error) {
	var class training.ClassCohort
	if err := db.Where("id = ? AND is_deleted = ?", classID, false).First(&class).Error; err != nil {
		return nil, &NotFoundError{Entity: "Class", ID: classID}
	}

	if class.Status == target {
		return &class, nil
	}
	if !allows(classTransitions, class.Status, target) {
		return nil, &ValidationError{Reason: fmt.Sprintf("Class cannot move from %s to %s!", class.Status, target)}
	}

	class.Status = target
	if err := db.Save(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

// StartModule moves a class module to IN_PROGRESS and stamps StartedAt. A
// module already in progress is left unchanged; a completed module cannot be
// reopened.
func StartModule(db *gorm.DB, classModuleID uint) (*training.ClassModule, error) {
	var module training.ClassModule
	if err := db.Where("id = ?", classModuleID).First(&module).Error; err != nil {
		return nil, &NotFoundError{Entity: "ClassModule", ID: classModuleID}
	}
	if err := ensureModuleStarted(db, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func ensureModuleStarted(db *gorm.DB, module *training.ClassModule) error {
	switch module.Status {
	case training.ModuleInProgress:
		return nil
	case training.ModuleCompleted:
		return &ValidationError{Reason: "Module is already completed!"}
	}

	now := time.Now()
	module.Status = training.ModuleInProgress
	module.StartedAt = &now
	return db.Save(module).Error
}

// CompleteModule finishes an in-progress class module. Sessions left
// unfinished do not block completion, but their count is reported so callers
// can surface it.
func CompleteModule(db *gorm.DB, classModuleID uint) (*training.ClassModule, int64, error) {
	var module training.ClassModule
	if err := db.Where("id = ?", classModuleID).First(&module).Error; err != nil {
		return nil, 0, &NotFoundError{Entity: "ClassModule", ID: classModuleID}
	}

	if module.Status == training.ModuleCompleted {
		return &module, 0, nil
	}
	if module.Status != training.ModuleInProgress {
		return nil, 0, &ValidationError{Reason: fmt.Sprintf("Module cannot move from %s to %s!", module.Status, training.ModuleCompleted)}
	}

	var unfinished int64
	if err := db.Model(&training.ClassSession{}).
		Where("class_module_id = ? AND status NOT IN ?", classModuleID,
			[]string{training.SessionCompleted, training.SessionCancelled}).
		Count(&unfinished).Error; err != nil {
		return nil, 0, err
	}
	if unfinished > 0 {
		log.Printf("Module %d completed with %d unfinished sessions", classModuleID, unfinished)
	}

	now := time.Now()
	module.Status = training.ModuleCompleted
	module.CompletedAt = &now
	if err := db.Save(&module).Error; err != nil {
		return nil, 0, err
	}
	return &module, unfinished, nil
}

// transitionSession applies one session transition, treating a request for
// the current status as a no-op.
func transitionSession(db *gorm.DB, sessionID uint, target string) (*training.ClassSession, error) {
	var session training.ClassSession
	if err := db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		return nil, &NotFoundError{Entity: "Session", ID: sessionID}
	}

	if session.Status == target {
		return &session, nil
	}
	if !allows(sessionTransitions, session.Status, target) {
		return nil, &ValidationError{Reason: fmt.Sprintf("Session cannot move from %s to %s!", session.Status, target)}
	}

	now := time.Now()
	session.Status = target
	switch target {
	case training.SessionInProgress:
		session.StartedAt = &now
	case training.SessionCompleted:
		session.CompletedAt = &now
	}
	if err := db.Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// StartSession begins a scheduled session. Starting a session that is already
// in progress returns it unchanged.
func StartSession(db *gorm.DB, sessionID uint) (*training.ClassSession, error) {
	return transitionSession(db, sessionID, training.SessionInProgress)
}

// CompleteSession finishes a session.
func CompleteSession(db *gorm.DB, sessionID uint) (*training.ClassSession, error) {
	return transitionSession(db, sessionID, training.SessionCompleted)
}

// CancelSession cancels a scheduled or running session. Cancelled is
// terminal.
func CancelSession(db *gorm.DB, sessionID uint) (*training.ClassSession, error) {
	return transitionSession(db, sessionID, training.SessionCancelled)
}

// AddSession schedules the next session within a class module and stamps it
// with the next session number. The first session added to a NOT_STARTED
// module starts the module.
func AddSession(db *gorm.DB, classModuleID uint, title string, templateRef *uint, scheduledAt *time.Time) (*training.ClassSession, error) {
	var module training.ClassModule
	if err := db.Where("id = ?", classModuleID).First(&module).Error; err != nil {
		return nil, &NotFoundError{Entity: "ClassModule", ID: classModuleID}
	}
	if module.Status == training.ModuleCompleted {
		return nil, &ValidationError{Reason: "Cannot add sessions to a completed module!"}
	}

	var session training.ClassSession
	err := db.Transaction(func(tx *gorm.DB) error {
		var maxNumber int
		tx.Model(&training.ClassSession{}).
			Where("class_module_id = ?", classModuleID).
			Select("COALESCE(MAX(session_number), 0)").Scan(&maxNumber)

		session = training.ClassSession{
			ClassModuleID: classModuleID,
			SessionNumber: maxNumber + 1,
			Title:         title,
			Status:        training.SessionScheduled,
			TemplateRef:   templateRef,
			ScheduledAt:   scheduledAt,
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		if module.Status == training.ModuleNotStarted {
			return ensureModuleStarted(tx, &module)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteClassModule hard-deletes a class module together with its sessions
// and progress rows. The cascade runs in one transaction so a crash never
// leaves orphaned progress records.
func DeleteClassModule(db *gorm.DB, classModuleID uint) error {
	var module training.ClassModule
	if err := db.Where("id = ?", classModuleID).First(&module).Error; err != nil {
		return &NotFoundError{Entity: "ClassModule", ID: classModuleID}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("class_module_id = ?", classModuleID).
			Delete(&training.ModuleProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("class_module_id = ?", classModuleID).
			Delete(&training.ClassSession{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&module).Error
	})
}
