package applicationValidator

import (
	"visafy/middleware"
	"visafy/models"

	"github.com/gofiber/fiber/v2"
)

// SaveStep validator middleware
func SaveStep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ApplicationID *uint             `json:"applicationId"`
			Step          int               `json:"step"`
			Fields        map[string]string `json:"fields"`
			VisaType      *string           `json:"visaType"`
			CurrentStep   *int              `json:"currentStep"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Step (required alongside fields)
		if len(reqData.Fields) > 0 && reqData.Step < models.MinStep {
			errors["step"] = "Step is required!"
		}

		// Validate Visa Type when provided
		if reqData.VisaType != nil && !models.IsValidVisaType(*reqData.VisaType) {
			errors["visaType"] = "Invalid visa type!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSaveStep", reqData)
		return c.Next()
	}
}

// Submit validator middleware
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ApplicationID uint `json:"applicationId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Application ID
		if reqData.ApplicationID == 0 {
			errors["applicationId"] = "Application ID is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmit", reqData)
		return c.Next()
	}
}
