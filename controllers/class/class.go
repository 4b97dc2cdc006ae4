package classController

import (
	"time"

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

// CreateClass creates a class cohort and pre-populates it with every catalog
// module currently eligible for its mentorship
func CreateClass(c *fiber.Ctx) error {
	actor, ok := requireStaff(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	reqData, ok := c.Locals("validatedClass").(*struct {
		MentorshipID uint       `json:"mentorship_id"`
		Name         string     `json:"name"`
		StartDate    *time.Time `json:"start_date"`
		EndDate      *time.Time `json:"end_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var mentorship models.Mentorship
	if err := db.Where("id = ? AND is_deleted = ?", reqData.MentorshipID, false).First(&mentorship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentorship not found!", nil)
	}

	class := training.ClassCohort{
		MentorshipID: reqData.MentorshipID,
		Name:         reqData.Name,
		Status:       training.ClassDraft,
		StartDate:    reqData.StartDate,
		EndDate:      reqData.EndDate,
		CreatedBy:    actor.ID,
	}
	if err := db.Create(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	populated, err := services.PopulateClassModules(db, class)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if populated.Added > 0 {
		utils.NotifyEvent(utils.EventModulesAdded, map[string]interface{}{
			"class_id": class.ID,
			"added":    populated.Added,
		})
	}

	message := "Class created successfully!"
	if mentorship.ProgramID == nil {
		var linkCount int64
		db.Model(&models.MentorshipProgram{}).
			Where("mentorship_id = ? AND is_deleted = ?", mentorship.ID, false).Count(&linkCount)
		if linkCount == 0 {
			message = "Class created. Mentorship has no linked program, so no modules were added."
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, message, fiber.Map{
		"class":         class,
		"modules_added": populated.Added,
	})
}

// GetClass fetches a class with its modules in order
func GetClass(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	classID := c.Locals("classID").(int)
	db := database.Database.Db

	var class training.ClassCohort
	if err := db.Where("id = ? AND is_deleted = ?", classID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	var modules []training.ClassModule
	db.Where("class_id = ?", classID).Order("order_sequence asc").Find(&modules)

	var participantCount int64
	db.Model(&training.Participant{}).Where("class_id = ?", classID).Count(&participantCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class fetched successfully!", fiber.Map{
		"class":        class,
		"modules":      modules,
		"participants": participantCount,
	})
}

func transitionClass(c *fiber.Ctx, target, message string) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	classID := c.Locals("classID").(int)
	class, err := services.TransitionClass(database.Database.Db, uint(classID), target)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, class)
}

// ActivateClass moves a draft class to ACTIVE
func ActivateClass(c *fiber.Ctx) error {
	return transitionClass(c, training.ClassActive, "Class activated successfully!")
}

// CompleteClass moves an active class to COMPLETED
func CompleteClass(c *fiber.Ctx) error {
	return transitionClass(c, training.ClassCompleted, "Class completed successfully!")
}

// CancelClass cancels a draft or active class
func CancelClass(c *fiber.Ctx) error {
	return transitionClass(c, training.ClassCancelled, "Class cancelled successfully!")
}
