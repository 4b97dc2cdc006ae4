package mentorshipController

import (
	"mentorhub/database"
	"mentorhub/middleware"
	"mentorhub/models"
	"mentorhub/services"

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

// CreateMentorship creates a new mentorship, optionally linked to a primary program
func CreateMentorship(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	reqData, ok := c.Locals("validatedMentorship").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		FacilityID  string `json:"facility_id"`
		ProgramID   *uint  `json:"program_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.ProgramID != nil {
		var program models.Program
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.ProgramID, false).First(&program).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
		}
	}

	mentorship := models.Mentorship{
		Name:        reqData.Name,
		Description: reqData.Description,
		FacilityID:  reqData.FacilityID,
		ProgramID:   reqData.ProgramID,
		Status:      "ACTIVE",
	}
	if err := db.Create(&mentorship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create mentorship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Mentorship created successfully!", mentorship)
}

// AttachProgram links an additional program to a mentorship
func AttachProgram(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	mentorshipID := c.Locals("mentorshipID").(int)
	reqData, ok := c.Locals("validatedProgramAttach").(*struct {
		ProgramID uint `json:"program_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var mentorship models.Mentorship
	if err := db.Where("id = ? AND is_deleted = ?", mentorshipID, false).First(&mentorship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentorship not found!", nil)
	}
	var program models.Program
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ProgramID, false).First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	var existing models.MentorshipProgram
	if err := db.Where("mentorship_id = ? AND program_id = ? AND is_deleted = ?",
		mentorshipID, reqData.ProgramID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Program already attached!", existing)
	}

	link := models.MentorshipProgram{MentorshipID: uint(mentorshipID), ProgramID: reqData.ProgramID}
	if err := db.Create(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to attach program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Program attached successfully!", link)
}

// SyncCategories replaces the mentorship's weighted category configuration
func SyncCategories(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	mentorshipID := c.Locals("mentorshipID").(int)
	desired, ok := c.Locals("validatedCategoryWeights").([]services.CategoryWeightInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := services.SyncCategoryWeights(database.Database.Db, uint(mentorshipID), desired); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	var rows []models.MentorshipCategory
	database.Database.Db.Where("mentorship_id = ?", mentorshipID).Order("category_id asc").Find(&rows)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category weights saved successfully!", rows)
}

// GetMentorship fetches a mentorship with its category configuration
func GetMentorship(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	mentorshipID := c.Locals("mentorshipID").(int)
	db := database.Database.Db

	var mentorship models.Mentorship
	if err := db.Where("id = ? AND is_deleted = ?", mentorshipID, false).First(&mentorship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentorship not found!", nil)
	}

	var categories []models.MentorshipCategory
	db.Where("mentorship_id = ? AND is_deleted = ?", mentorshipID, false).
		Order("category_id asc").Find(&categories)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentorship fetched successfully!", fiber.Map{
		"mentorship": mentorship,
		"categories": categories,
	})
}
