package participantController

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

// EnrollParticipant enrolls a single user into a class and seeds their module
// progress, exempting modules completed elsewhere
func EnrollParticipant(c *fiber.Ctx) error {
	actor, ok := requireStaff(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	classID := c.Locals("classID").(int)
	reqData, ok := c.Locals("validatedEnroll").(*struct {
		UserID uint `json:"user_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	participant, created, err := services.EnrollUser(database.Database.Db, uint(classID), reqData.UserID, actor.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	if !created {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User already enrolled in this class!", participant)
	}

	utils.NotifyEvent(utils.EventMenteesEnrolled, map[string]interface{}{
		"class_id": classID,
		"added":    1,
	})
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Participant enrolled successfully!", participant)
}

// BulkEnrollUsers enrolls a list of existing users by id. Unknown users count
// as failed, existing enrollments as skipped.
func BulkEnrollUsers(c *fiber.Ctx) error {
	actor, ok := requireStaff(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	classID := c.Locals("classID").(int)
	reqData, ok := c.Locals("validatedUserIDs").(*struct {
		UserIDs []uint `json:"user_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := services.BulkEnroll(database.Database.Db, uint(classID), reqData.UserIDs, actor.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	if result.Added > 0 {
		utils.NotifyEvent(utils.EventMenteesEnrolled, map[string]interface{}{
			"class_id": classID,
			"added":    result.Added,
			"skipped":  result.Skipped,
			"failed":   result.Failed,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment batch processed!", result)
}

// BulkEnrollMentees enrolls imported mentee rows, matching users by phone and
// creating them when missing. Duplicates are skipped and counted.
func BulkEnrollMentees(c *fiber.Ctx) error {
	actor, ok := requireStaff(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	classID := c.Locals("classID").(int)
	rows, ok := c.Locals("validatedMentees").([]services.MenteeRow)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := services.EnrollMentees(database.Database.Db, uint(classID), rows, actor.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	if result.Added > 0 {
		utils.NotifyEvent(utils.EventMenteesEnrolled, map[string]interface{}{
			"class_id": classID,
			"added":    result.Added,
			"skipped":  result.Skipped,
			"failed":   result.Failed,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentee import processed!", result)
}

// DropParticipant marks a participant as dropped from the class
func DropParticipant(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	participantID := c.Locals("participantID").(int)
	db := database.Database.Db

	var participant training.Participant
	if err := db.Where("id = ?", participantID).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
	}
	if participant.Status == training.ParticipantCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Completed participants cannot be dropped!", nil)
	}
	if participant.Status == training.ParticipantDropped {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Participant already dropped!", participant)
	}

	participant.Status = training.ParticipantDropped
	if err := db.Save(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to drop participant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Participant dropped successfully!", participant)
}

// GetParticipantProgress lists the participant's per-module progress in
// module order
func GetParticipantProgress(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	participantID := c.Locals("participantID").(int)
	db := database.Database.Db

	var participant training.Participant
	if err := db.Where("id = ?", participantID).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
	}

	var progress []training.ModuleProgress
	db.Joins("JOIN class_modules ON class_modules.id = module_progresses.class_module_id").
		Where("module_progresses.participant_id = ?", participantID).
		Order("class_modules.order_sequence asc").
		Find(&progress)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"participant": participant,
		"progress":    progress,
	})
}

// StartProgress moves a mentee's module progress to IN_PROGRESS
func StartProgress(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	progressID := c.Locals("progressID").(int)
	progress, err := services.StartProgress(database.Database.Db, uint(progressID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress started successfully!", progress)
}

// CompleteProgress finishes a mentee's module progress, recording attendance
// and assessment score when supplied
func CompleteProgress(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	progressID := c.Locals("progressID").(int)
	reqData, ok := c.Locals("validatedProgressCompletion").(*struct {
		AttendancePercentage *float64 `json:"attendance_percentage"`
		AssessmentScore      *float64 `json:"assessment_score"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	progress, err := services.CompleteProgress(database.Database.Db, uint(progressID),
		reqData.AttendancePercentage, reqData.AssessmentScore)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress completed successfully!", progress)
}

// MarkProgressExempted manually exempts a progress record
func MarkProgressExempted(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	progressID := c.Locals("progressID").(int)
	progress, err := services.MarkExempted(database.Database.Db, uint(progressID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress exempted successfully!", progress)
}

// ClearProgressExemption reverts a manual exemption. Exemptions backed by
// verified prior completion are refused.
func ClearProgressExemption(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	progressID := c.Locals("progressID").(int)
	progress, err := services.ClearExemption(database.Database.Db, uint(progressID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exemption cleared successfully!", progress)
}
