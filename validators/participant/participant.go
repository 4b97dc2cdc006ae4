package participantValidator

import (
	"strconv"
	"strings"

	"mentorhub/middleware"
	"mentorhub/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

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

// ProgressID validates the :progress_id path parameter
func ProgressID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("progress_id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Progress ID!", nil)
		}
		c.Locals("progressID", id)
		return c.Next()
	}
}

// ProgressCompletion validates the optional attendance and score fields on
// progress completion
func ProgressCompletion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AttendancePercentage *float64 `json:"attendance_percentage"`
			AssessmentScore      *float64 `json:"assessment_score"`
		})

		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		errors := make(map[string]string)
		if reqData.AttendancePercentage != nil && (*reqData.AttendancePercentage < 0 || *reqData.AttendancePercentage > 100) {
			errors["attendance_percentage"] = "Attendance percentage must be between 0 and 100!"
		}
		if reqData.AssessmentScore != nil && (*reqData.AssessmentScore < 0 || *reqData.AssessmentScore > 100) {
			errors["assessment_score"] = "Assessment score must be between 0 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgressCompletion", reqData)
		return c.Next()
	}
}

// Enroll validates the single-user enrollment request
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID uint `json:"user_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.UserID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// BulkUserIDs validates the enroll-existing-users batch payload
func BulkUserIDs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserIDs []uint `json:"user_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.UserIDs) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least one user ID is required!", nil)
		}
		for _, id := range reqData.UserIDs {
			if id == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User IDs must be positive numbers!", nil)
			}
		}

		c.Locals("validatedUserIDs", reqData)
		return c.Next()
	}
}

// BulkMentees validates the imported mentee rows fed in by the import
// collaborator
func BulkMentees() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Mentees []services.MenteeRow `json:"mentees"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Mentees) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least one mentee row is required!", nil)
		}

		errors := make(map[string]string)
		for i, row := range reqData.Mentees {
			if err := validate.Struct(row); err != nil {
				errors["mentees["+strconv.Itoa(i)+"]"] = "Mentee row is invalid: " + err.Error()
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMentees", reqData.Mentees)
		return c.Next()
	}
}
