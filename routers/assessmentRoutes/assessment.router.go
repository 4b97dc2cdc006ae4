package assessmentRoutes

import (
	assessmentControllers "mentorhub/controllers/assessment"
	"mentorhub/middleware"
	assessmentValidators "mentorhub/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

func SetupAssessmentRoutes(app *fiber.App) {
	participantGroup := app.Group("/participants")

	participantGroup.Put("/:participant_id/assessments/:category_id", assessmentValidators.ParticipantID(), assessmentValidators.CategoryID(), assessmentValidators.RecordResult(), middleware.JWTMiddleware, assessmentControllers.RecordResult)
	participantGroup.Get("/:participant_id/outcome", assessmentValidators.ParticipantID(), middleware.JWTMiddleware, assessmentControllers.GetOutcome)
}
