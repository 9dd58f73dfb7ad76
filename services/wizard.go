package services

import (
	"errors"

	"visafy/models"
	"visafy/repository"

	"gorm.io/gorm"
)

// ErrApplicationRequired is returned by SubmitApplication when no
// application id was supplied.
var ErrApplicationRequired = errors.New("application id is required")

// SaveStepInput is one step's worth of wizard data. ApplicationID is nil on
// the very first save; TargetStep is the step pointer the client wants the
// application parked at (the client computes the advance, the server records
// it as-is).
type SaveStepInput struct {
	ApplicationID *uint
	Step          int
	Fields        map[string]string
	VisaType      *string
	TargetStep    *int
}

// SaveStep persists one wizard step: resolves or creates the application,
// then upserts every supplied field. Field writes are independent; a failure
// partway through leaves earlier fields durably saved. A stale or foreign
// application id fails with gorm.ErrRecordNotFound before any field is
// written — it never falls back to creating a fresh application.
func SaveStep(db *gorm.DB, userID uint, input SaveStepInput) (uint, error) {
	var appID uint

	if input.ApplicationID == nil || *input.ApplicationID == 0 {
		step := models.MinStep
		if input.TargetStep != nil {
			step = *input.TargetStep
		}

		app, err := repository.CreateApplication(db, userID, input.VisaType, step)
		if err != nil {
			return 0, err
		}
		appID = app.ID
	} else {
		appID = *input.ApplicationID

		err := repository.UpdateApplication(db, appID, userID, repository.ApplicationUpdates{
			VisaType:    input.VisaType,
			CurrentStep: input.TargetStep,
		})
		if err != nil {
			return 0, err
		}
	}

	for name, value := range input.Fields {
		if err := repository.UpsertFieldValue(db, appID, input.Step, name, value); err != nil {
			return 0, err
		}
	}

	return appID, nil
}

// SubmitApplication moves the application to submitted and parks the step
// pointer at the review step, in one ownership-gated update. Submitting an
// already submitted application succeeds again with no further effect.
// Completeness of fields and documents is deliberately not checked here.
func SubmitApplication(db *gorm.DB, userID, applicationID uint) error {
	if applicationID == 0 {
		return ErrApplicationRequired
	}

	status := models.StatusSubmitted
	step := models.MaxStep

	return repository.UpdateApplication(db, applicationID, userID, repository.ApplicationUpdates{
		Status:      &status,
		CurrentStep: &step,
	})
}

// GetApplicationsForUser returns every application the user owns with field
// map and documents attached, for dashboard and wizard-resume rendering.
func GetApplicationsForUser(db *gorm.DB, userID uint) ([]repository.ApplicationWithData, error) {
	return repository.ListApplicationsByUser(db, userID)
}
