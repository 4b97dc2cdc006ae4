package services

import (
	"errors"
	"strings"

	"mentorhub/models"
	"mentorhub/models/training"

	"gorm.io/gorm"
)

// MenteeRow is one validated row handed over by the import collaborator.
type MenteeRow struct {
	Name       string `json:"name" validate:"required,min=2"`
	Phone      string `json:"phone" validate:"required,min=7,max=20"`
	FacilityID string `json:"facility_id" validate:"required"`
}

// EnrollUser enrolls one user into a class and seeds their module progress,
// exempting modules they completed elsewhere. An existing enrollment is not
// an error; the second return reports whether a new participant was created.
func EnrollUser(db *gorm.DB, classID, userID, actorID uint) (*training.Participant, bool, error) {
	var class training.ClassCohort
	if err := db.Where("id = ? AND is_deleted = ?", classID, false).First(&class).Error; err != nil {
		return nil, false, &NotFoundError{Entity: "Class", ID: classID}
	}
	if class.Status == training.ClassCompleted || class.Status == training.ClassCancelled {
		return nil, false, &ValidationError{Reason: "Cannot enroll into a " + class.Status + " class!"}
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, false, &NotFoundError{Entity: "User", ID: userID}
	}

	var existing training.Participant
	if err := db.Where("class_id = ? AND user_id = ?", classID, userID).First(&existing).Error; err == nil {
		return &existing, false, nil
	}

	var modules []training.ClassModule
	if err := db.Where("class_id = ?", classID).Find(&modules).Error; err != nil {
		return nil, false, err
	}

	var participant training.Participant
	err := db.Transaction(func(tx *gorm.DB) error {
		// Snapshot the mentee's prior completions once, before seeding
		completed, err := CompletedCatalogModuleIDs(tx, userID)
		if err != nil {
			return err
		}

		participant = training.Participant{
			ClassID:    classID,
			UserID:     userID,
			Status:     training.ParticipantEnrolled,
			EnrolledBy: actorID,
		}
		if err := tx.Create(&participant).Error; err != nil {
			return err
		}

		_, err = SeedParticipantProgress(tx, participant, modules, completed)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return &participant, true, nil
}

// BulkEnroll enrolls many users into a class in one atomic batch, reporting
// how many were added, already enrolled, or unknown.
func BulkEnroll(db *gorm.DB, classID uint, userIDs []uint, actorID uint) (BatchResult, error) {
	result := BatchResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, userID := range userIDs {
			_, created, err := EnrollUser(tx, classID, userID, actorID)
			if err != nil {
				var notFound *NotFoundError
				if errors.As(err, &notFound) && notFound.Entity == "User" {
					result.Failed++
					continue
				}
				return err
			}
			if created {
				result.Added++
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return BatchResult{}, err
	}
	return result, nil
}

// EnrollMentees matches each imported mentee row to a user by phone, creating
// the user when missing, then enrolls them all atomically.
func EnrollMentees(db *gorm.DB, classID uint, rows []MenteeRow, actorID uint) (BatchResult, error) {
	result := BatchResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			phone := strings.TrimSpace(row.Phone)
			if phone == "" {
				result.Failed++
				continue
			}

			var user models.User
			err := tx.Where("phone = ? AND is_deleted = ?", phone, false).First(&user).Error
			if err == gorm.ErrRecordNotFound {
				user = models.User{
					Name:       strings.TrimSpace(row.Name),
					Phone:      phone,
					Role:       "MENTEE",
					FacilityID: strings.TrimSpace(row.FacilityID),
				}
				if err := tx.Create(&user).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			_, created, err := EnrollUser(tx, classID, user.ID, actorID)
			if err != nil {
				return err
			}
			if created {
				result.Added++
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return BatchResult{}, err
	}
	return result, nil
}
