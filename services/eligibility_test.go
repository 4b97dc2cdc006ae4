package services

import (
	"testing"

	"mentorhub/models"
	"mentorhub/models/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibleModules_ExcludesThisClassAndCompletedSiblings(t *testing.T) {
	db := setupTestDB(t)
	program, catalog := seedProgram(t, db, "EmONC", 4)
	mentorship := seedMentorship(t, db, &program.ID)

	// Module 0 sits in a COMPLETED sibling class, module 1 in an ACTIVE one
	completedSibling := seedClass(t, db, mentorship.ID, training.ClassCompleted)
	seedClassModule(t, db, completedSibling.ID, catalog[0].ID, 1)
	activeSibling := seedClass(t, db, mentorship.ID, training.ClassActive)
	seedClassModule(t, db, activeSibling.ID, catalog[1].ID, 1)

	// The class being edited already holds module 2
	class := seedClass(t, db, mentorship.ID, training.ClassDraft)
	seedClassModule(t, db, class.ID, catalog[2].ID, 1)

	eligible, err := EligibleModules(db, mentorship.ID, class.ID)
	require.NoError(t, err)

	ids := make([]uint, 0, len(eligible))
	for _, mod := range eligible {
		ids = append(ids, mod.ID)
	}
	// Locked by completed sibling: catalog[0]. Already present: catalog[2].
	// Active sibling imposes no restriction, so catalog[1] stays eligible.
	assert.Equal(t, []uint{catalog[1].ID, catalog[3].ID}, ids)
}

func TestEligibleModules_DifferentMentorshipIsUnrestricted(t *testing.T) {
	db := setupTestDB(t)
	program, catalog := seedProgram(t, db, "EmONC", 1)
	moduleX := catalog[0]

	m1 := seedMentorship(t, db, &program.ID)
	completedClass := seedClass(t, db, m1.ID, training.ClassCompleted)
	seedClassModule(t, db, completedClass.ID, moduleX.ID, 1)

	// Sibling class of the same mentorship: X is locked
	draftOfM1 := seedClass(t, db, m1.ID, training.ClassDraft)
	eligible, err := EligibleModules(db, m1.ID, draftOfM1.ID)
	require.NoError(t, err)
	assert.Empty(t, eligible)

	// Class of a different mentorship: X is freely offered
	m2 := seedMentorship(t, db, &program.ID)
	classOfM2 := seedClass(t, db, m2.ID, training.ClassDraft)
	eligible, err = EligibleModules(db, m2.ID, classOfM2.ID)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, moduleX.ID, eligible[0].ID)
}

func TestEligibleModules_NoProgramYieldsEmptyNotError(t *testing.T) {
	db := setupTestDB(t)
	mentorship := seedMentorship(t, db, nil)
	class := seedClass(t, db, mentorship.ID, training.ClassDraft)

	eligible, err := EligibleModules(db, mentorship.ID, class.ID)
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestEligibleModules_IncludesAdditionalProgramsAndOrdering(t *testing.T) {
	db := setupTestDB(t)
	primary, primaryModules := seedProgram(t, db, "Primary", 2)
	extra, extraModules := seedProgram(t, db, "Extra", 1)

	mentorship := seedMentorship(t, db, &primary.ID)
	require.NoError(t, db.Create(&models.MentorshipProgram{
		MentorshipID: mentorship.ID, ProgramID: extra.ID,
	}).Error)

	// Inactive catalog modules are never offered
	require.NoError(t, db.Model(&models.CatalogModule{}).
		Where("id = ?", primaryModules[1].ID).Update("is_active", false).Error)

	class := seedClass(t, db, mentorship.ID, training.ClassDraft)
	eligible, err := EligibleModules(db, mentorship.ID, class.ID)
	require.NoError(t, err)

	ids := make([]uint, 0, len(eligible))
	for _, mod := range eligible {
		ids = append(ids, mod.ID)
	}
	assert.Equal(t, []uint{primaryModules[0].ID, extraModules[0].ID}, ids)
}

func TestAddModulesToClass_CountsAndSeedsEnrollees(t *testing.T) {
	db := setupTestDB(t)
	program, catalog := seedProgram(t, db, "EmONC", 3)
	mentorship := seedMentorship(t, db, &program.ID)
	class := seedClass(t, db, mentorship.ID, training.ClassActive)

	// Module 0 already in the class; an enrolled mentee completed module 1 elsewhere
	seedClassModule(t, db, class.ID, catalog[0].ID, 1)

	otherMentorship := seedMentorship(t, db, nil)
	otherClass := seedClass(t, db, otherMentorship.ID, training.ClassCompleted)
	otherModule := seedClassModule(t, db, otherClass.ID, catalog[1].ID, 1)
	user := seedUser(t, db, "amina")
	otherParticipant := seedParticipant(t, db, otherClass.ID, user.ID)
	require.NoError(t, db.Create(&training.ModuleProgress{
		ParticipantID: otherParticipant.ID, ClassModuleID: otherModule.ID,
		Status: training.ProgressCompleted,
	}).Error)

	participant := seedParticipant(t, db, class.ID, user.ID)

	result, added, err := AddModulesToClass(db, class.ID, []uint{catalog[0].ID, catalog[1].ID, catalog[2].ID, 9999})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 1, result.Skipped) // catalog[0] already present
	assert.Equal(t, 1, result.Failed)  // unknown catalog id
	require.Len(t, added, 2)

	// Order sequences continue after the existing module
	assert.Equal(t, 2, added[0].OrderSequence)
	assert.Equal(t, 3, added[1].OrderSequence)

	// The enrolled mentee got progress rows, with module 1 exempted
	var exemptedRow training.ModuleProgress
	require.NoError(t, db.Where("participant_id = ? AND class_module_id = ?", participant.ID, added[0].ID).
		First(&exemptedRow).Error)
	assert.Equal(t, training.ProgressExempted, exemptedRow.Status)
	assert.True(t, exemptedRow.CompletedInPreviousClass)

	var freshRow training.ModuleProgress
	require.NoError(t, db.Where("participant_id = ? AND class_module_id = ?", participant.ID, added[1].ID).
		First(&freshRow).Error)
	assert.Equal(t, training.ProgressNotStarted, freshRow.Status)
}

func TestReorderClassModules(t *testing.T) {
	db := setupTestDB(t)
	program, catalog := seedProgram(t, db, "EmONC", 3)
	mentorship := seedMentorship(t, db, &program.ID)
	class := seedClass(t, db, mentorship.ID, training.ClassDraft)

	a := seedClassModule(t, db, class.ID, catalog[0].ID, 1)
	b := seedClassModule(t, db, class.ID, catalog[1].ID, 2)
	c := seedClassModule(t, db, class.ID, catalog[2].ID, 3)

	// Partial lists are rejected
	err := ReorderClassModules(db, class.ID, []uint{c.ID, a.ID})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	require.NoError(t, ReorderClassModules(db, class.ID, []uint{c.ID, a.ID, b.ID}))

	var modules []training.ClassModule
	require.NoError(t, db.Where("class_id = ?", class.ID).Order("order_sequence asc").Find(&modules).Error)
	assert.Equal(t, []uint{c.ID, a.ID, b.ID}, []uint{modules[0].ID, modules[1].ID, modules[2].ID})
}
