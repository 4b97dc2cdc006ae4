package classController

import (
	"mentorhub/database"
	"mentorhub/middleware"
	"mentorhub/models"
	"mentorhub/models/training"
	"mentorhub/services"
	"mentorhub/utils"

	"github.com/gofiber/fiber/v2"
)

// GetEligibleModules lists the catalog modules that may be added to the class
// right now
func GetEligibleModules(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	classID := c.Locals("classID").(int)
	db := database.Database.Db

	var class training.ClassCohort
	if err := db.Where("id = ? AND is_deleted = ?", classID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	eligible, err := services.EligibleModules(db, class.MentorshipID, uint(classID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	message := "Eligible modules fetched successfully!"
	if len(eligible) == 0 {
		var mentorship models.Mentorship
		db.Where("id = ?", class.MentorshipID).First(&mentorship)
		var linkCount int64
		db.Model(&models.MentorshipProgram{}).
			Where("mentorship_id = ? AND is_deleted = ?", class.MentorshipID, false).Count(&linkCount)
		if mentorship.ProgramID == nil && linkCount == 0 {
			message = "Mentorship has no linked program, so no modules are available."
		} else {
			message = "No further modules are eligible for this class."
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"modules": eligible,
	})
}

// AddModules bulk-adds the selected catalog modules to the class
func AddModules(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	classID := c.Locals("classID").(int)
	reqData, ok := c.Locals("validatedModuleSelection").(*struct {
		CatalogModuleIDs []uint `json:"catalog_module_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, added, err := services.AddModulesToClass(database.Database.Db, uint(classID), reqData.CatalogModuleIDs)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	if result.Added > 0 {
		utils.NotifyEvent(utils.EventModulesAdded, map[string]interface{}{
			"class_id": classID,
			"added":    result.Added,
			"skipped":  result.Skipped,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module selection processed!", fiber.Map{
		"result":  result,
		"modules": added,
	})
}

// ReorderModules rewrites the order of the class's modules
func ReorderModules(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	classID := c.Locals("classID").(int)
	reqData, ok := c.Locals("validatedModuleOrder").(*struct {
		ModuleIDs []uint `json:"module_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := services.ReorderClassModules(database.Database.Db, uint(classID), reqData.ModuleIDs); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	var modules []training.ClassModule
	database.Database.Db.Where("class_id = ?", classID).Order("order_sequence asc").Find(&modules)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules reordered successfully!", modules)
}

// DeleteModule removes a class module together with its sessions and progress
// records
func DeleteModule(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	moduleID := c.Locals("moduleID").(int)
	if err := services.DeleteClassModule(database.Database.Db, uint(moduleID)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// StartModule moves a class module to IN_PROGRESS
func StartModule(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	moduleID := c.Locals("moduleID").(int)
	module, err := services.StartModule(database.Database.Db, uint(moduleID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module started successfully!", module)
}

// CompleteModule finishes a class module, reporting unfinished sessions
func CompleteModule(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	moduleID := c.Locals("moduleID").(int)
	module, unfinished, err := services.CompleteModule(database.Database.Db, uint(moduleID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	message := "Module completed successfully!"
	if unfinished > 0 {
		message = "Module completed with unfinished sessions!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"module":              module,
		"unfinished_sessions": unfinished,
	})
}
