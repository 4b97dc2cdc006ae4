package services

import (
	"time"

	"mentorhub/models"
	"mentorhub/models/training"

	"gorm.io/gorm"
)

// RecordAssessment upserts the participant's result for one assessment
// category and recomputes their overall outcome. The category weight is
// captured from the current configuration at write time so it stays stable
// even if the mentorship is reconfigured later. Re-assessment overwrites the
// existing row, it never appends.
func RecordAssessment(db *gorm.DB, participantID, categoryID uint, result string, assessorID uint) (*training.AssessmentResult, ScoreOutcome, error) {
	if result != training.ResultPass && result != training.ResultFail {
		return nil, ScoreOutcome{}, &ValidationError{Reason: "Result must be PASS or FAIL!"}
	}

	var participant training.Participant
	if err := db.Where("id = ?", participantID).First(&participant).Error; err != nil {
		return nil, ScoreOutcome{}, &NotFoundError{Entity: "Participant", ID: participantID}
	}

	var class training.ClassCohort
	if err := db.Where("id = ? AND is_deleted = ?", participant.ClassID, false).First(&class).Error; err != nil {
		return nil, ScoreOutcome{}, &NotFoundError{Entity: "Class", ID: participant.ClassID}
	}

	var config models.MentorshipCategory
	err := db.Where("mentorship_id = ? AND category_id = ? AND is_active = ? AND is_deleted = ?",
		class.MentorshipID, categoryID, true, false).First(&config).Error
	if err != nil {
		return nil, ScoreOutcome{}, &ValidationError{Reason: "Category is not configured for this mentorship!"}
	}

	var row training.AssessmentResult
	err = db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		err := tx.Where("participant_id = ? AND category_id = ?", participantID, categoryID).
			First(&row).Error
		if err == gorm.ErrRecordNotFound {
			row = training.AssessmentResult{
				ParticipantID:  participantID,
				CategoryID:     categoryID,
				Result:         result,
				CategoryWeight: config.WeightPercentage,
				AssessmentDate: now,
				AssessorID:     assessorID,
			}
			return tx.Create(&row).Error
		}
		if err != nil {
			return err
		}

		row.Result = result
		row.CategoryWeight = config.WeightPercentage
		row.AssessmentDate = now
		row.AssessorID = assessorID
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, ScoreOutcome{}, err
	}

	outcome, err := RescoreParticipant(db, participantID)
	if err != nil {
		return nil, ScoreOutcome{}, err
	}
	return &row, outcome, nil
}
