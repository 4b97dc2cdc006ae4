package classRoutes

import (
	classControllers "mentorhub/controllers/class"
	"mentorhub/middleware"
	classValidators "mentorhub/validators/class"

	"github.com/gofiber/fiber/v2"
)

func SetupClassRoutes(app *fiber.App) {
	classGroup := app.Group("/classes")

	classGroup.Post("", classValidators.CreateClass(), middleware.JWTMiddleware, classControllers.CreateClass)
	classGroup.Get("/:id", classValidators.ClassID(), middleware.JWTMiddleware, classControllers.GetClass)
	classGroup.Patch("/:id/activate", classValidators.ClassID(), middleware.JWTMiddleware, classControllers.ActivateClass)
	classGroup.Patch("/:id/complete", classValidators.ClassID(), middleware.JWTMiddleware, classControllers.CompleteClass)
	classGroup.Patch("/:id/cancel", classValidators.ClassID(), middleware.JWTMiddleware, classControllers.CancelClass)

	// Module management within a class
	classGroup.Get("/:id/eligible-modules", classValidators.ClassID(), middleware.JWTMiddleware, classControllers.GetEligibleModules)
	classGroup.Post("/:id/modules", classValidators.ClassID(), classValidators.ModuleSelection(), middleware.JWTMiddleware, classControllers.AddModules)
	classGroup.Put("/:id/modules/order", classValidators.ClassID(), classValidators.ModuleOrder(), middleware.JWTMiddleware, classControllers.ReorderModules)

	moduleGroup := app.Group("/class-modules")

	// Cascade delete is destructive, so it needs an explicit permission grant
	// on top of the staff role check
	moduleGroup.Delete("/:module_id", classValidators.ModuleID(), middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-classes"), classControllers.DeleteModule)
	moduleGroup.Patch("/:module_id/start", classValidators.ModuleID(), middleware.JWTMiddleware, classControllers.StartModule)
	moduleGroup.Patch("/:module_id/complete", classValidators.ModuleID(), middleware.JWTMiddleware, classControllers.CompleteModule)
	moduleGroup.Post("/:module_id/sessions", classValidators.ModuleID(), classValidators.CreateSession(), middleware.JWTMiddleware, classControllers.AddSession)

	sessionGroup := app.Group("/sessions")

	sessionGroup.Patch("/:session_id/start", classValidators.SessionID(), middleware.JWTMiddleware, classControllers.StartSession)
	sessionGroup.Patch("/:session_id/complete", classValidators.SessionID(), middleware.JWTMiddleware, classControllers.CompleteSession)
	sessionGroup.Patch("/:session_id/cancel", classValidators.SessionID(), middleware.JWTMiddleware, classControllers.CancelSession)
}
