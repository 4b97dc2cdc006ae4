package assessmentController

import (
	"mentorhub/database"
	"mentorhub/middleware"
	"mentorhub/models"
	"mentorhub/models/training"
	"mentorhub/services"
	"mentorhub/utils"

	"github.com/gofiber/fiber/v2"
)

// requireStaff loads the acting user and checks they hold a staff role.
func requireStaff(c *fiber.Ctx) (models.User, bool) {
	var user models.User
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return user, false
	}
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return user, false
	}
	if user.Role != "STAFF" && user.Role != "ADMIN" {
		return user, false
	}
	return user, true
}

// RecordResult upserts the participant's result for one category and
// recomputes their overall outcome. The assessor is the authenticated actor.
func RecordResult(c *fiber.Ctx) error {
	actor, ok := requireStaff(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	participantID := c.Locals("participantID").(int)
	categoryID := c.Locals("categoryID").(int)
	reqData, ok := c.Locals("validatedResult").(*struct {
		Result string `json:"result"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	row, outcome, err := services.RecordAssessment(db, uint(participantID), uint(categoryID), reqData.Result, actor.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	utils.NotifyEvent(utils.EventAssessmentSaved, map[string]interface{}{
		"participant_id": participantID,
		"category_id":    categoryID,
		"result":         row.Result,
	})

	if outcome.AllAssessed {
		payload := map[string]interface{}{
			"participant_id": participantID,
			"status":         outcome.Status,
		}
		if outcome.Score != nil {
			payload["score"] = *outcome.Score
		}
		utils.NotifyEvent(utils.EventOutcomeComputed, payload)

		var participant training.Participant
		if err := db.First(&participant, participantID).Error; err == nil {
			var mentee models.User
			if err := db.First(&mentee, participant.UserID).Error; err == nil && outcome.Score != nil {
				utils.SendOutcomeEmail(mentee.Email, mentee.Name, outcome.Status, *outcome.Score)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment saved successfully!", fiber.Map{
		"result":  row,
		"outcome": outcome,
	})
}

// GetOutcome computes the participant's current outcome without touching the
// record
func GetOutcome(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	participantID := c.Locals("participantID").(int)
	db := database.Database.Db

	var participant training.Participant
	if err := db.Where("id = ?", participantID).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
	}

	var class training.ClassCohort
	if err := db.Where("id = ? AND is_deleted = ?", participant.ClassID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	var categories []models.MentorshipCategory
	db.Where("mentorship_id = ? AND is_active = ? AND is_deleted = ?", class.MentorshipID, true, false).
		Find(&categories)

	var results []training.AssessmentResult
	db.Where("participant_id = ?", participantID).Find(&results)

	outcome, err := services.ComputeOutcome(categories, results)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Outcome computed successfully!", fiber.Map{
		"participant": participant,
		"outcome":     outcome,
		"results":     results,
	})
}
