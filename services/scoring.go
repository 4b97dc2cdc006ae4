package services

import (
	"fmt"
	"math"
	"time"

	"mentorhub/models"
	"mentorhub/models/training"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightTolerance is the allowed deviation of active category weights from
// 100 percent.
const WeightTolerance = 0.1

// ScoreOutcome is the derived overall result of a participant across all
// configured assessment categories.
type ScoreOutcome struct {
	AllAssessed bool     `json:"all_assessed"`
	Status      string   `json:"status"` // PASSED, FAILED, INCOMPLETE
	Score       *float64 `json:"score"`  // nil until all categories are assessed
}

// ValidateWeights checks that the active categories' weights sum to 100
// within tolerance.
func ValidateWeights(categories []models.MentorshipCategory) error {
	sum := 0.0
	for _, cat := range categories {
		if cat.IsActive {
			sum += cat.WeightPercentage
		}
	}
	if math.Abs(sum-100.0) > WeightTolerance {
		return &ValidationError{Reason: fmt.Sprintf("Category weights must sum to 100%%, got %.2f%%!", sum)}
	}
	return nil
}

// ComputeOutcome derives the weighted overall outcome from the mentorship's
// category configuration and the participant's recorded results. Required
// categories act as hard gates: a single FAIL on a required category means
// FAILED regardless of the aggregate score. The weight only determines the
// reported percentage.
func ComputeOutcome(categories []models.MentorshipCategory, results []training.AssessmentResult) (ScoreOutcome, error) {
	active := make([]models.MentorshipCategory, 0, len(categories))
	for _, cat := range categories {
		if cat.IsActive {
			active = append(active, cat)
		}
	}
	if len(active) == 0 {
		return ScoreOutcome{}, &ConsistencyError{Reason: "No active assessment categories configured!"}
	}
	if err := ValidateWeights(active); err != nil {
		// Broken configuration must block scoring entirely, never produce a
		// misleading partial percentage.
		return ScoreOutcome{}, &ConsistencyError{Reason: err.Error()}
	}

	resultByCategory := make(map[uint]training.AssessmentResult, len(results))
	for _, res := range results {
		resultByCategory[res.CategoryID] = res
	}

	score := 0.0
	passedAllRequired := true
	for _, cat := range active {
		res, ok := resultByCategory[cat.CategoryID]
		if !ok {
			return ScoreOutcome{AllAssessed: false, Status: training.OutcomeIncomplete}, nil
		}
		if res.Result == training.ResultPass {
			score += cat.WeightPercentage
		} else if cat.IsRequired {
			passedAllRequired = false
		}
	}

	outcome := ScoreOutcome{AllAssessed: true, Score: &score, Status: training.OutcomePassed}
	if !passedAllRequired {
		outcome.Status = training.OutcomeFailed
	}
	return outcome, nil
}

// RescoreParticipant re-derives the participant's overall outcome and, once
// every configured category has a result, finalizes the participant record.
// The score and the participant update share one transaction so the outcome
// is never half applied.
func RescoreParticipant(db *gorm.DB, participantID uint) (ScoreOutcome, error) {
	var participant training.Participant
	if err := db.Where("id = ?", participantID).First(&participant).Error; err != nil {
		return ScoreOutcome{}, &NotFoundError{Entity: "Participant", ID: participantID}
	}

	var class training.ClassCohort
	if err := db.Where("id = ? AND is_deleted = ?", participant.ClassID, false).First(&class).Error; err != nil {
		return ScoreOutcome{}, &NotFoundError{Entity: "Class", ID: participant.ClassID}
	}

	var categories []models.MentorshipCategory
	if err := db.Where("mentorship_id = ? AND is_active = ? AND is_deleted = ?",
		class.MentorshipID, true, false).Find(&categories).Error; err != nil {
		return ScoreOutcome{}, err
	}

	var results []training.AssessmentResult
	if err := db.Where("participant_id = ?", participantID).Find(&results).Error; err != nil {
		return ScoreOutcome{}, err
	}

	outcome, err := ComputeOutcome(categories, results)
	if err != nil {
		return ScoreOutcome{}, err
	}

	if !outcome.AllAssessed {
		return outcome, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		participant.Status = training.ParticipantCompleted
		participant.OverallStatus = outcome.Status
		participant.OverallScore = outcome.Score
		if participant.CompletedAt == nil {
			now := time.Now()
			participant.CompletedAt = &now
		}
		if participant.CompletionCode == "" {
			participant.CompletionCode = uuid.NewString()
		}
		return tx.Save(&participant).Error
	})
	if err != nil {
		return ScoreOutcome{}, err
	}
	return outcome, nil
}

// CategoryWeightInput is one desired category association in a weight sync.
type CategoryWeightInput struct {
	CategoryID       uint    `json:"category_id" validate:"required"`
	WeightPercentage float64 `json:"weight_percentage" validate:"gte=0,lte=100"`
	PassThreshold    float64 `json:"pass_threshold" validate:"gte=0,lte=100"`
	IsRequired       bool    `json:"is_required"`
}

// SyncCategoryWeights replaces the mentorship's category configuration
// wholesale: associations missing from the desired set are removed, the rest
// are created or updated, all in one transaction. The 100% weight invariant
// is checked before any row is touched.
func SyncCategoryWeights(db *gorm.DB, mentorshipID uint, desired []CategoryWeightInput) error {
	var mentorship models.Mentorship
	if err := db.Where("id = ? AND is_deleted = ?", mentorshipID, false).First(&mentorship).Error; err != nil {
		return &NotFoundError{Entity: "Mentorship", ID: mentorshipID}
	}

	seen := make(map[uint]bool, len(desired))
	sum := 0.0
	for _, in := range desired {
		if seen[in.CategoryID] {
			return &ValidationError{Reason: fmt.Sprintf("Category %d listed more than once!", in.CategoryID)}
		}
		seen[in.CategoryID] = true
		sum += in.WeightPercentage
	}
	if math.Abs(sum-100.0) > WeightTolerance {
		return &ValidationError{Reason: fmt.Sprintf("Category weights must sum to 100%%, got %.2f%%!", sum)}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var current []models.MentorshipCategory
		if err := tx.Where("mentorship_id = ?", mentorshipID).Find(&current).Error; err != nil {
			return err
		}

		currentByCategory := make(map[uint]models.MentorshipCategory, len(current))
		for _, row := range current {
			currentByCategory[row.CategoryID] = row
		}

		// Remove associations absent from the desired set
		for _, row := range current {
			if !seen[row.CategoryID] {
				if err := tx.Delete(&row).Error; err != nil {
					return err
				}
			}
		}

		// Create or update the rest
		for _, in := range desired {
			if row, ok := currentByCategory[in.CategoryID]; ok {
				row.WeightPercentage = in.WeightPercentage
				row.PassThreshold = in.PassThreshold
				row.IsRequired = in.IsRequired
				row.IsActive = true
				row.IsDeleted = false
				if err := tx.Save(&row).Error; err != nil {
					return err
				}
				continue
			}
			row := models.MentorshipCategory{
				MentorshipID:     mentorshipID,
				CategoryID:       in.CategoryID,
				WeightPercentage: in.WeightPercentage,
				PassThreshold:    in.PassThreshold,
				IsRequired:       in.IsRequired,
				IsActive:         true,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
