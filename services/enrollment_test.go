package services

import (
	"testing"

	"mentorhub/models"
	"mentorhub/models/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollUser_DuplicateIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	mentorship := seedMentorship(t, db, nil)
	class := seedClass(t, db, mentorship.ID, training.ClassActive)
	user := seedUser(t, db, "amina")

	first, created, err := EnrollUser(db, class.ID, user.ID, 1)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := EnrollUser(db, class.ID, user.ID, 1)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestEnrollUser_RejectsClosedClass(t *testing.T) {
	db := setupTestDB(t)
	mentorship := seedMentorship(t, db, nil)
	class := seedClass(t, db, mentorship.ID, training.ClassCompleted)
	user := seedUser(t, db, "amina")

	_, _, err := EnrollUser(db, class.ID, user.ID, 1)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestBulkEnroll_ReportsCounts(t *testing.T) {
	db := setupTestDB(t)
	mentorship := seedMentorship(t, db, nil)
	class := seedClass(t, db, mentorship.ID, training.ClassActive)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	// bob is already enrolled
	_, _, err := EnrollUser(db, class.ID, bob.ID, 1)
	require.NoError(t, err)

	result, err := BulkEnroll(db, class.ID, []uint{alice.ID, bob.ID, 9999}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Failed)
}

func TestEnrollMentees_MatchesByPhoneAndSeedsProgress(t *testing.T) {
	db := setupTestDB(t)
	_, catalog := seedProgram(t, db, "EmONC", 1)
	mentorship := seedMentorship(t, db, nil)
	class := seedClass(t, db, mentorship.ID, training.ClassActive)
	seedClassModule(t, db, class.ID, catalog[0].ID, 1)

	existing := models.User{Name: "Amina", Phone: "0700111222", Role: "MENTEE", FacilityID: "FAC-1"}
	require.NoError(t, db.Create(&existing).Error)

	rows := []MenteeRow{
		{Name: "Amina", Phone: "0700111222", FacilityID: "FAC-1"},
		{Name: "Betty", Phone: "0700333444", FacilityID: "FAC-2"},
	}
	result, err := EnrollMentees(db, class.ID, rows, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 0, result.Skipped)

	// Amina was matched, not duplicated
	var userCount int64
	db.Model(&models.User{}).Where("phone = ?", "0700111222").Count(&userCount)
	assert.Equal(t, int64(1), userCount)

	// Betty was created as a mentee of her facility
	var betty models.User
	require.NoError(t, db.Where("phone = ?", "0700333444").First(&betty).Error)
	assert.Equal(t, "MENTEE", betty.Role)
	assert.Equal(t, "FAC-2", betty.FacilityID)

	// Both got progress rows for the class module
	var progressCount int64
	db.Model(&training.ModuleProgress{}).
		Joins("JOIN participants ON participants.id = module_progresses.participant_id").
		Where("participants.class_id = ?", class.ID).
		Count(&progressCount)
	assert.Equal(t, int64(2), progressCount)

	// Re-importing the same rows only skips
	result, err = EnrollMentees(db, class.ID, rows, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Added)
	assert.Equal(t, 2, result.Skipped)
}

func TestPopulateClassModules(t *testing.T) {
	db := setupTestDB(t)
	program, catalog := seedProgram(t, db, "EmONC", 3)
	mentorship := seedMentorship(t, db, &program.ID)

	// One module is locked by a completed sibling
	completedSibling := seedClass(t, db, mentorship.ID, training.ClassCompleted)
	seedClassModule(t, db, completedSibling.ID, catalog[0].ID, 1)

	class := seedClass(t, db, mentorship.ID, training.ClassDraft)
	result, err := PopulateClassModules(db, class)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)

	var modules []training.ClassModule
	require.NoError(t, db.Where("class_id = ?", class.ID).Order("order_sequence asc").Find(&modules).Error)
	require.Len(t, modules, 2)
	assert.Equal(t, catalog[1].ID, modules[0].CatalogModuleID)
	assert.Equal(t, catalog[2].ID, modules[1].CatalogModuleID)
	assert.Equal(t, 1, modules[0].OrderSequence)
	assert.Equal(t, 2, modules[1].OrderSequence)
}
