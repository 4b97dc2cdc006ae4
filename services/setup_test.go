package services

import (
	"fmt"
	"testing"

	"mentorhub/models"
	"mentorhub/models/training"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Program{},
		&models.CatalogModule{},
		&models.Mentorship{},
		&models.MentorshipProgram{},
		&models.AssessmentCategory{},
		&models.MentorshipCategory{},
		&training.ClassCohort{},
		&training.ClassModule{},
		&training.ClassSession{},
		&training.Participant{},
		&training.ModuleProgress{},
		&training.AssessmentResult{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{Name: name, Phone: fmt.Sprintf("%s-phone", name), Role: "MENTEE"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProgram(t *testing.T, db *gorm.DB, name string, moduleCount int) (models.Program, []models.CatalogModule) {
	t.Helper()
	program := models.Program{Name: name, Status: "ACTIVE"}
	require.NoError(t, db.Create(&program).Error)

	modules := make([]models.CatalogModule, 0, moduleCount)
	for i := 1; i <= moduleCount; i++ {
		mod := models.CatalogModule{
			ProgramID:  program.ID,
			Title:      fmt.Sprintf("%s module %d", name, i),
			OrderIndex: i,
			IsActive:   true,
		}
		require.NoError(t, db.Create(&mod).Error)
		modules = append(modules, mod)
	}
	return program, modules
}

func seedMentorship(t *testing.T, db *gorm.DB, programID *uint) models.Mentorship {
	t.Helper()
	mentorship := models.Mentorship{Name: "Mentorship", FacilityID: "FAC-1", ProgramID: programID, Status: "ACTIVE"}
	require.NoError(t, db.Create(&mentorship).Error)
	return mentorship
}

func seedClass(t *testing.T, db *gorm.DB, mentorshipID uint, status string) training.ClassCohort {
	t.Helper()
	class := training.ClassCohort{MentorshipID: mentorshipID, Name: "Cohort", Status: status}
	require.NoError(t, db.Create(&class).Error)
	return class
}

func seedClassModule(t *testing.T, db *gorm.DB, classID, catalogModuleID uint, order int) training.ClassModule {
	t.Helper()
	mod := training.ClassModule{
		ClassID:         classID,
		CatalogModuleID: catalogModuleID,
		OrderSequence:   order,
		Status:          training.ModuleNotStarted,
	}
	require.NoError(t, db.Create(&mod).Error)
	return mod
}

func seedParticipant(t *testing.T, db *gorm.DB, classID, userID uint) training.Participant {
	t.Helper()
	participant := training.Participant{ClassID: classID, UserID: userID, Status: training.ParticipantEnrolled}
	require.NoError(t, db.Create(&participant).Error)
	return participant
}

// seedWeightedCategories configures categories on a mentorship and returns
// the created category catalog rows in input order.
func seedWeightedCategories(t *testing.T, db *gorm.DB, mentorshipID uint, weights []CategoryWeightInput) []models.AssessmentCategory {
	t.Helper()
	categories := make([]models.AssessmentCategory, 0, len(weights))
	for i := range weights {
		cat := models.AssessmentCategory{Name: fmt.Sprintf("Category %d", i+1)}
		require.NoError(t, db.Create(&cat).Error)
		weights[i].CategoryID = cat.ID
		categories = append(categories, cat)
	}
	require.NoError(t, SyncCategoryWeights(db, mentorshipID, weights))
	return categories
}
