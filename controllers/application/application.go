package applicationController

import (
	"errors"
	"log"

	"visafy/database"
	"visafy/middleware"
	"visafy/services"
	"visafy/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListApplications returns every application the user owns, each with its
// field map and documents, for the dashboard and wizard resume.
func ListApplications(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	apps, err := services.GetApplicationsForUser(database.Database.Db, userId)
	if err != nil {
		log.Printf("Error fetching applications: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully.", apps)
}

// SaveStep creates or updates an application with one wizard step's fields.
func SaveStep(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSaveStep").(*struct {
		ApplicationID *uint             `json:"applicationId"`
		Step          int               `json:"step"`
		Fields        map[string]string `json:"fields"`
		VisaType      *string           `json:"visaType"`
		CurrentStep   *int              `json:"currentStep"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	appID, err := services.SaveStep(database.Database.Db, userId, services.SaveStepInput{
		ApplicationID: reqData.ApplicationID,
		Step:          reqData.Step,
		Fields:        reqData.Fields,
		VisaType:      reqData.VisaType,
		TargetStep:    reqData.CurrentStep,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}
	if err != nil {
		log.Printf("Error saving application step: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application saved successfully.", fiber.Map{
		"applicationId": appID,
	})
}

// Submit finalizes the wizard: the application moves to submitted and the
// step pointer parks at the review step.
func Submit(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmit").(*struct {
		ApplicationID uint `json:"applicationId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := services.SubmitApplication(database.Database.Db, userId, reqData.ApplicationID)
	if errors.Is(err, services.ErrApplicationRequired) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Application ID is required!", nil)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}
	if err != nil {
		log.Printf("Error submitting application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	// Confirmation email is best-effort
	go utils.SendSubmissionEmail(database.Database.Db, userId, reqData.ApplicationID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application submitted successfully.", nil)
}
