package classValidator

import (
	"strconv"
	"strings"
	"time"

	"mentorhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx, name string) (int, bool) {
	idStr := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ClassID validates the :id path parameter
func ClassID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Class ID!", nil)
		}
		c.Locals("classID", id)
		return c.Next()
	}
}

// ModuleID validates the :module_id path parameter
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		c.Locals("moduleID", id)
		return c.Next()
	}
}

// SessionID validates the :session_id path parameter
func SessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "session_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Session ID!", nil)
		}
		c.Locals("sessionID", id)
		return c.Next()
	}
}

// CreateClass validates class creation request
func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			MentorshipID uint       `json:"mentorship_id"`
			Name         string     `json:"name"`
			StartDate    *time.Time `json:"start_date"`
			EndDate      *time.Time `json:"end_date"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)

		if reqData.MentorshipID == 0 {
			errors["mentorship_id"] = "Mentorship ID is required!"
		}
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}
		if reqData.StartDate != nil && reqData.EndDate != nil && reqData.EndDate.Before(*reqData.StartDate) {
			errors["end_date"] = "End date must be after start date!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

// ModuleSelection validates the bulk module addition payload
func ModuleSelection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CatalogModuleIDs []uint `json:"catalog_module_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.CatalogModuleIDs) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least one module must be selected!", nil)
		}
		for _, id := range reqData.CatalogModuleIDs {
			if id == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module IDs must be positive numbers!", nil)
			}
		}

		c.Locals("validatedModuleSelection", reqData)
		return c.Next()
	}
}

// ModuleOrder validates the module reorder payload
func ModuleOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleIDs []uint `json:"module_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.ModuleIDs) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module order must not be empty!", nil)
		}

		c.Locals("validatedModuleOrder", reqData)
		return c.Next()
	}
}

// CreateSession validates session creation request
func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string     `json:"title"`
			TemplateRef *uint      `json:"template_ref"`
			ScheduledAt *time.Time `json:"scheduled_at"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.TemplateRef != nil && *reqData.TemplateRef == 0 {
			errors["template_ref"] = "Template reference must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}
