package documentValidator

import (
	"visafy/middleware"

	"github.com/gofiber/fiber/v2"
)

// Delete validator middleware
func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DocumentID    uint `json:"documentId"`
			ApplicationID uint `json:"applicationId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Document ID
		if reqData.DocumentID == 0 {
			errors["documentId"] = "Document ID is required!"
		}

		// Validate Application ID
		if reqData.ApplicationID == 0 {
			errors["applicationId"] = "Application ID is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDeleteDocument", reqData)
		return c.Next()
	}
}
