package classController

import (
	"time"

	"mentorhub/database"
	"mentorhub/middleware"
	"mentorhub/services"

	"github.com/gofiber/fiber/v2"
)

// AddSession schedules a new session within a class module. The first session
// added to a fresh module starts it.
func AddSession(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	moduleID := c.Locals("moduleID").(int)
	reqData, ok := c.Locals("validatedSession").(*struct {
		Title       string     `json:"title"`
		TemplateRef *uint      `json:"template_ref"`
		ScheduledAt *time.Time `json:"scheduled_at"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	session, err := services.AddSession(database.Database.Db, uint(moduleID),
		reqData.Title, reqData.TemplateRef, reqData.ScheduledAt)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session scheduled successfully!", session)
}

// StartSession begins a scheduled session; starting twice is a no-op
func StartSession(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	sessionID := c.Locals("sessionID").(int)
	session, err := services.StartSession(database.Database.Db, uint(sessionID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session started successfully!", session)
}

// CompleteSession finishes a session
func CompleteSession(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	sessionID := c.Locals("sessionID").(int)
	session, err := services.CompleteSession(database.Database.Db, uint(sessionID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session completed successfully!", session)
}

// CancelSession cancels a scheduled or running session
func CancelSession(c *fiber.Ctx) error {
	if _, ok := requireStaff(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	sessionID := c.Locals("sessionID").(int)
	session, err := services.CancelSession(database.Database.Db, uint(sessionID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session cancelled successfully!", session)
}
