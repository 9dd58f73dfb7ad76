package applicationRoutes

import (
	applicationController "visafy/controllers/application"
	"visafy/middleware"
	applicationValidator "visafy/validators/application"

	"github.com/gofiber/fiber/v2"
)

func SetupApplicationRoutes(app *fiber.App) {
	applicationGroup := app.Group("/applications")

	applicationGroup.Get("/", middleware.JWTMiddleware, applicationController.ListApplications)
	applicationGroup.Post("/", applicationValidator.SaveStep(), middleware.JWTMiddleware, applicationController.SaveStep)
	applicationGroup.Post("/submit", applicationValidator.Submit(), middleware.JWTMiddleware, applicationController.Submit)
}
