package services

import (
	"testing"
	"time"

	"mentorhub/models/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExemption_CrossMentorshipCompletion(t *testing.T) {
	db := setupTestDB(t)
	_, catalog := seedProgram(t, db, "EmONC", 2)
	moduleX, moduleY := catalog[0], catalog[1]

	// Mentee completed module X in class 1 of mentorship M1
	m1 := seedMentorship(t, db, nil)
	class1 := seedClass(t, db, m1.ID, training.ClassCompleted)
	cm1 := seedClassModule(t, db, class1.ID, moduleX.ID, 1)
	user := seedUser(t, db, "amina")
	p1 := seedParticipant(t, db, class1.ID, user.ID)
	now := time.Now()
	require.NoError(t, db.Create(&training.ModuleProgress{
		ParticipantID: p1.ID, ClassModuleID: cm1.ID,
		Status: training.ProgressCompleted, CompletedAt: &now,
	}).Error)

	completed, err := CompletedCatalogModuleIDs(db, user.ID)
	require.NoError(t, err)
	assert.True(t, completed[moduleX.ID])
	assert.False(t, completed[moduleY.ID])

	// Enrolling into class 2 of a different mentorship exempts module X only
	m2 := seedMentorship(t, db, nil)
	class2 := seedClass(t, db, m2.ID, training.ClassActive)
	seedClassModule(t, db, class2.ID, moduleX.ID, 1)
	seedClassModule(t, db, class2.ID, moduleY.ID, 2)

	participant, created, err := EnrollUser(db, class2.ID, user.ID, 1)
	require.NoError(t, err)
	require.True(t, created)

	var rows []training.ModuleProgress
	require.NoError(t, db.Where("participant_id = ?", participant.ID).
		Joins("JOIN class_modules ON class_modules.id = module_progresses.class_module_id").
		Order("class_modules.order_sequence asc").Find(&rows).Error)
	require.Len(t, rows, 2)

	assert.Equal(t, training.ProgressExempted, rows[0].Status)
	assert.True(t, rows[0].CompletedInPreviousClass)
	assert.NotNil(t, rows[0].ExemptedAt)

	assert.Equal(t, training.ProgressNotStarted, rows[1].Status)
	assert.False(t, rows[1].CompletedInPreviousClass)
	assert.Nil(t, rows[1].ExemptedAt)
}

func TestExemption_IdempotentSeeding(t *testing.T) {
	db := setupTestDB(t)
	_, catalog := seedProgram(t, db, "EmONC", 1)
	mentorship := seedMentorship(t, db, nil)
	class := seedClass(t, db, mentorship.ID, training.ClassActive)
	module := seedClassModule(t, db, class.ID, catalog[0].ID, 1)
	user := seedUser(t, db, "amina")
	participant := seedParticipant(t, db, class.ID, user.ID)

	completed, err := CompletedCatalogModuleIDs(db, user.ID)
	require.NoError(t, err)

	first, err := SeedParticipantProgress(db, participant, []training.ClassModule{module}, completed)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Added)
	assert.Equal(t, 0, first.Skipped)

	// Reseeding with no new completions in between changes nothing
	second, err := SeedParticipantProgress(db, participant, []training.ClassModule{module}, completed)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 1, second.Skipped)

	var count int64
	db.Model(&training.ModuleProgress{}).Where("participant_id = ?", participant.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestExemption_SnapshotNotLiveConstraint(t *testing.T) {
	db := setupTestDB(t)
	_, catalog := seedProgram(t, db, "EmONC", 1)
	moduleX := catalog[0]

	mentorship := seedMentorship(t, db, nil)
	classA := seedClass(t, db, mentorship.ID, training.ClassActive)
	cmA := seedClassModule(t, db, classA.ID, moduleX.ID, 1)

	m2 := seedMentorship(t, db, nil)
	classB := seedClass(t, db, m2.ID, training.ClassActive)
	cmB := seedClassModule(t, db, classB.ID, moduleX.ID, 1)

	user := seedUser(t, db, "amina")

	// Seeded before any completion: NOT_STARTED
	pA, _, err := EnrollUser(db, classA.ID, user.ID, 1)
	require.NoError(t, err)
	var progressA training.ModuleProgress
	require.NoError(t, db.Where("participant_id = ? AND class_module_id = ?", pA.ID, cmA.ID).First(&progressA).Error)
	require.Equal(t, training.ProgressNotStarted, progressA.Status)

	// Mentee later completes X in class B
	pB, _, err := EnrollUser(db, classB.ID, user.ID, 1)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, db.Model(&training.ModuleProgress{}).
		Where("participant_id = ? AND class_module_id = ?", pB.ID, cmB.ID).
		Updates(map[string]interface{}{"status": training.ProgressCompleted, "completed_at": now}).Error)

	// The earlier row is a snapshot and stays NOT_STARTED
	require.NoError(t, db.Where("participant_id = ? AND class_module_id = ?", pA.ID, cmA.ID).First(&progressA).Error)
	assert.Equal(t, training.ProgressNotStarted, progressA.Status)
	assert.False(t, progressA.CompletedInPreviousClass)
}

func TestClearExemption_PriorCompletionIsImmutable(t *testing.T) {
	db := setupTestDB(t)
	_, catalog := seedProgram(t, db, "EmONC", 1)
	mentorship := seedMentorship(t, db, nil)
	class := seedClass(t, db, mentorship.ID, training.ClassActive)
	module := seedClassModule(t, db, class.ID, catalog[0].ID, 1)
	user := seedUser(t, db, "amina")
	participant := seedParticipant(t, db, class.ID, user.ID)

	now := time.Now()
	genuine := training.ModuleProgress{
		ParticipantID: participant.ID, ClassModuleID: module.ID,
		Status: training.ProgressExempted, CompletedInPreviousClass: true, ExemptedAt: &now,
	}
	require.NoError(t, db.Create(&genuine).Error)

	_, err := ClearExemption(db, genuine.ID)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)

	var fresh training.ModuleProgress
	require.NoError(t, db.First(&fresh, genuine.ID).Error)
	assert.Equal(t, training.ProgressExempted, fresh.Status)
}

func TestClearExemption_ManualExemptionIsClearable(t *testing.T) {
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

	exempted, err := MarkExempted(db, row.ID)
	require.NoError(t, err)
	assert.Equal(t, training.ProgressExempted, exempted.Status)
	assert.False(t, exempted.CompletedInPreviousClass)

	cleared, err := ClearExemption(db, row.ID)
	require.NoError(t, err)
	assert.Equal(t, training.ProgressNotStarted, cleared.Status)
	assert.Nil(t, cleared.ExemptedAt)
}
