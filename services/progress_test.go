package services

import (
	"testing"

	"mentorhub/models/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressLifecycle(t *testing.T) {
	db := setupTestDB(t)
	_, catalog := seedProgram(t, db, "EmONC", 1)
	mentorship := seedMentorship(t, db, nil)
	class := seedClass(t, db, mentorship.ID, training.ClassActive)
	module := seedClassModule(t, db, class.ID, catalog[0].ID, 1)
	user := seedUser(t, db, "amina")
	participant := seedParticipant(t, db, class.ID, user.ID)

	row := training.ModuleProgress{
		ParticipantID: participant.ID, ClassModuleID: module.ID,
		Status: training.ProgressNotStarted,
	}
	require.NoError(t, db.Create(&row).Error)

	started, err := StartProgress(db, row.ID)
	require.NoError(t, err)
	assert.Equal(t, training.ProgressInProgress, started.Status)

	// Starting again is a no-op
	started, err = StartProgress(db, row.ID)
	require.NoError(t, err)
	assert.Equal(t, training.ProgressInProgress, started.Status)

	attendance := 92.5
	score := 81.0
	completed, err := CompleteProgress(db, row.ID, &attendance, &score)
	require.NoError(t, err)
	assert.Equal(t, training.ProgressCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)
	require.NotNil(t, completed.AttendancePercentage)
	assert.Equal(t, 92.5, *completed.AttendancePercentage)
	require.NotNil(t, completed.AssessmentScore)
	assert.Equal(t, 81.0, *completed.AssessmentScore)

	// Completed rows cannot be restarted
	_, err = StartProgress(db, row.ID)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestProgress_ExemptedRowsAreLocked(t *testing.T) {
	db := setupTestDB(t)
	_, catalog := seedProgram(t, db, "EmONC", 1)
	mentorship := seedMentorship(t, db, nil)
	class := seedClass(t, db, mentorship.ID, training.ClassActive)
	module := seedClassModule(t, db, class.ID, catalog[0].ID, 1)
	user := seedUser(t, db, "amina")
	participant := seedParticipant(t, db, class.ID, user.ID)

	row := training.ModuleProgress{
		ParticipantID: participant.ID, ClassModuleID: module.ID,
		Status: training.ProgressExempted,
	}
	require.NoError(t, db.Create(&row).Error)

	var conflictErr *ConflictError
	_, err := StartProgress(db, row.ID)
	require.ErrorAs(t, err, &conflictErr)
	_, err = CompleteProgress(db, row.ID, nil, nil)
	require.ErrorAs(t, err, &conflictErr)
}

func TestCompleteProgress_FeedsExemptionLookup(t *testing.T) {
	db := setupTestDB(t)
	_, catalog := seedProgram(t, db, "EmONC", 1)
	moduleX := catalog[0]

	m1 := seedMentorship(t, db, nil)
	class1 := seedClass(t, db, m1.ID, training.ClassActive)
	seedClassModule(t, db, class1.ID, moduleX.ID, 1)
	user := seedUser(t, db, "amina")

	p1, _, err := EnrollUser(db, class1.ID, user.ID, 1)
	require.NoError(t, err)

	var row training.ModuleProgress
	require.NoError(t, db.Where("participant_id = ?", p1.ID).First(&row).Error)
	_, err = CompleteProgress(db, row.ID, nil, nil)
	require.NoError(t, err)

	completed, err := CompletedCatalogModuleIDs(db, user.ID)
	require.NoError(t, err)
	assert.True(t, completed[moduleX.ID])

	// The completion carries into the mentee's next enrollment as an exemption
	m2 := seedMentorship(t, db, nil)
	class2 := seedClass(t, db, m2.ID, training.ClassActive)
	cm2 := seedClassModule(t, db, class2.ID, moduleX.ID, 1)

	p2, _, err := EnrollUser(db, class2.ID, user.ID, 1)
	require.NoError(t, err)

	var seeded training.ModuleProgress
	require.NoError(t, db.Where("participant_id = ? AND class_module_id = ?", p2.ID, cm2.ID).
		First(&seeded).Error)
	assert.Equal(t, training.ProgressExempted, seeded.Status)
	assert.True(t, seeded.CompletedInPreviousClass)
}
