package uploadRoutes

import (
	documentController "visafy/controllers/document"
	"visafy/middleware"
	documentValidator "visafy/validators/document"

	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(app *fiber.App) {
	uploadGroup := app.Group("/upload")

	uploadGroup.Post("/", middleware.JWTMiddleware, documentController.Upload)
	uploadGroup.Delete("/", documentValidator.Delete(), middleware.JWTMiddleware, documentController.Delete)
}
