package mentorshipValidator

import (
	"strconv"
	"strings"

	"mentorhub/middleware"
	"mentorhub/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// MentorshipID validates the :id path parameter
func MentorshipID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Mentorship ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Mentorship ID!", nil)
		}

		c.Locals("mentorshipID", id)
		return c.Next()
	}
}

// CreateMentorship validates mentorship creation request
func CreateMentorship() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			FacilityID  string `json:"facility_id"`
			ProgramID   *uint  `json:"program_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.FacilityID = strings.TrimSpace(reqData.FacilityID)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.FacilityID == "" {
			errors["facility_id"] = "Facility ID is required!"
		}

		if reqData.ProgramID != nil && *reqData.ProgramID == 0 {
			errors["program_id"] = "Program ID must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMentorship", reqData)
		return c.Next()
	}
}

// AttachProgram validates the additional-program attachment request
func AttachProgram() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProgramID uint `json:"program_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ProgramID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Program ID is required!", nil)
		}

		c.Locals("validatedProgramAttach", reqData)
		return c.Next()
	}
}

// SyncCategories validates the replace-all weighted category payload. The
// 100% sum invariant itself is enforced by the service before any write.
func SyncCategories() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Categories []services.CategoryWeightInput `json:"categories"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Categories) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least one category is required!", nil)
		}

		errors := make(map[string]string)
		for i, cat := range reqData.Categories {
			if err := validate.Struct(cat); err != nil {
				errors["categories["+strconv.Itoa(i)+"]"] = "Category entry is invalid: " + err.Error()
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategoryWeights", reqData.Categories)
		return c.Next()
	}
}
