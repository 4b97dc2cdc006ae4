package mentorshipRoutes

import (
	mentorshipControllers "mentorhub/controllers/mentorship"
	"mentorhub/middleware"
	mentorshipValidators "mentorhub/validators/mentorship"

	"github.com/gofiber/fiber/v2"
)

func SetupMentorshipRoutes(app *fiber.App) {
	mentorshipGroup := app.Group("/mentorships")

	mentorshipGroup.Post("", mentorshipValidators.CreateMentorship(), middleware.JWTMiddleware, mentorshipControllers.CreateMentorship)
	mentorshipGroup.Get("/:id", mentorshipValidators.MentorshipID(), middleware.JWTMiddleware, mentorshipControllers.GetMentorship)
	mentorshipGroup.Patch("/:id/program", mentorshipValidators.MentorshipID(), mentorshipValidators.AttachProgram(), middleware.JWTMiddleware, mentorshipControllers.AttachProgram)
	mentorshipGroup.Put("/:id/categories", mentorshipValidators.MentorshipID(), mentorshipValidators.SyncCategories(), middleware.JWTMiddleware, mentorshipControllers.SyncCategories)
}
