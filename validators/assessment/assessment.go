package assessmentValidator

import (
	"strconv"
	"strings"

	"mentorhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// ParticipantID validates the :participant_id path parameter
func ParticipantID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("participant_id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Participant ID!", nil)
		}
		c.Locals("participantID", id)
		return c.Next()
	}
}

// CategoryID validates the :category_id path parameter
func CategoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("category_id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
		}
		c.Locals("categoryID", id)
		return c.Next()
	}
}

// RecordResult validates the assessment result body
func RecordResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Result string `json:"result"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Result = strings.ToUpper(strings.TrimSpace(reqData.Result))
		if reqData.Result == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Result is required!", nil)
		}

		c.Locals("validatedResult", reqData)
		return c.Next()
	}
}
