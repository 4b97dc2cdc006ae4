package participantRoutes

import (
	participantControllers "mentorhub/controllers/participant"
	"mentorhub/middleware"
	classValidators "mentorhub/validators/class"
	participantValidators "mentorhub/validators/participant"

	"github.com/gofiber/fiber/v2"
)

func SetupParticipantRoutes(app *fiber.App) {
	classGroup := app.Group("/classes")

	classGroup.Post("/:id/participants", classValidators.ClassID(), participantValidators.Enroll(), middleware.JWTMiddleware, participantControllers.EnrollParticipant)
	classGroup.Post("/:id/participants/bulk", classValidators.ClassID(), participantValidators.BulkMentees(), middleware.JWTMiddleware, participantControllers.BulkEnrollMentees)
	classGroup.Post("/:id/participants/bulk-users", classValidators.ClassID(), participantValidators.BulkUserIDs(), middleware.JWTMiddleware, participantControllers.BulkEnrollUsers)

	participantGroup := app.Group("/participants")

	participantGroup.Patch("/:participant_id/drop", participantValidators.ParticipantID(), middleware.JWTMiddleware, participantControllers.DropParticipant)
	participantGroup.Get("/:participant_id/progress", participantValidators.ParticipantID(), middleware.JWTMiddleware, participantControllers.GetParticipantProgress)

	progressGroup := app.Group("/progress")

	progressGroup.Patch("/:progress_id/start", participantValidators.ProgressID(), middleware.JWTMiddleware, participantControllers.StartProgress)
	progressGroup.Patch("/:progress_id/complete", participantValidators.ProgressID(), participantValidators.ProgressCompletion(), middleware.JWTMiddleware, participantControllers.CompleteProgress)
	progressGroup.Patch("/:progress_id/exempt", participantValidators.ProgressID(), middleware.JWTMiddleware, participantControllers.MarkProgressExempted)
	progressGroup.Patch("/:progress_id/unexempt", participantValidators.ProgressID(), middleware.JWTMiddleware, participantControllers.ClearProgressExemption)
}
