package repository

import (
	"errors"
	"time"

	"visafy/models"

	"gorm.io/gorm"
)

// ApplicationWithData is one application joined with its field values and
// documents, shaped for the dashboard/resume listing.
type ApplicationWithData struct {
	ID          uint              `json:"id"`
	UserID      uint              `json:"userId"`
	VisaType    *string           `json:"visaType"`
	Status      string            `json:"status"`
	CurrentStep int               `json:"currentStep"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Fields      map[string]string `json:"fields"`
	Documents   []DocumentInfo    `json:"documents"`
}

// ApplicationUpdates carries the optional fields of an ownership-gated
// application update. Nil fields are left untouched.
type ApplicationUpdates struct {
	VisaType    *string
	CurrentStep *int
	Status      *string
}

func clampStep(step int) int {
	if step < models.MinStep {
		return models.MinStep
	}
	if step > models.MaxStep {
		return models.MaxStep
	}
	return step
}

// CreateApplication inserts a new draft application for the user. A user may
// hold several drafts at once; no uniqueness is enforced.
func CreateApplication(db *gorm.DB, userID uint, visaType *string, currentStep int) (*models.Application, error) {
	app := models.Application{
		UserID:      userID,
		VisaType:    visaType,
		Status:      models.StatusDraft,
		CurrentStep: clampStep(currentStep),
	}

	if err := db.Create(&app).Error; err != nil {
		return nil, err
	}

	return &app, nil
}

// UpdateApplication applies the given updates to the application, but only if
// it belongs to userID. Ownership is expressed in the UPDATE's own predicate
// rather than a prior read, so there is no window for the row to change hands
// between check and write. A miss (absent or foreign row) is reported as
// gorm.ErrRecordNotFound either way, to avoid confirming existence to
// non-owners.
func UpdateApplication(db *gorm.DB, applicationID, userID uint, updates ApplicationUpdates) error {
	values := map[string]interface{}{"updated_at": time.Now()}

	if updates.VisaType != nil {
		values["visa_type"] = *updates.VisaType
	}
	if updates.CurrentStep != nil {
		values["current_step"] = clampStep(*updates.CurrentStep)
	}
	if updates.Status != nil {
		values["status"] = *updates.Status
	}

	result := db.Model(&models.Application{}).
		Where("id = ? AND user_id = ?", applicationID, userID).
		Updates(values)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// UpsertFieldValue writes one wizard field. At most one row exists per
// (application, field name); the step number only records which step last
// wrote the field. Callers must already have validated that the application
// belongs to the acting user.
func UpsertFieldValue(db *gorm.DB, applicationID uint, stepNumber int, fieldName, fieldValue string) error {
	var existing models.ApplicationFieldValue
	err := db.Where("application_id = ? AND field_name = ?", applicationID, fieldName).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row := models.ApplicationFieldValue{
			ApplicationID: applicationID,
			StepNumber:    stepNumber,
			FieldName:     fieldName,
			FieldValue:    fieldValue,
		}
		return db.Create(&row).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&existing).
		Updates(map[string]interface{}{"field_value": fieldValue, "updated_at": time.Now()}).Error
}

// ListApplicationsByUser returns every application the user owns, each with
// its flattened field map and document list. Field values and documents are
// fetched with one IN query apiece instead of one round trip per application.
func ListApplicationsByUser(db *gorm.DB, userID uint) ([]ApplicationWithData, error) {
	var apps []models.Application
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}

	if len(apps) == 0 {
		return []ApplicationWithData{}, nil
	}

	appIDs := make([]uint, 0, len(apps))
	for _, app := range apps {
		appIDs = append(appIDs, app.ID)
	}

	var values []models.ApplicationFieldValue
	if err := db.Where("application_id IN ?", appIDs).Find(&values).Error; err != nil {
		return nil, err
	}

	fieldsByApp := make(map[uint]map[string]string, len(apps))
	for _, v := range values {
		if fieldsByApp[v.ApplicationID] == nil {
			fieldsByApp[v.ApplicationID] = make(map[string]string)
		}
		fieldsByApp[v.ApplicationID][v.FieldName] = v.FieldValue
	}

	docsByApp, err := ListDocumentsByApplicationIDs(db, appIDs)
	if err != nil {
		return nil, err
	}

	result := make([]ApplicationWithData, 0, len(apps))
	for _, app := range apps {
		fields := fieldsByApp[app.ID]
		if fields == nil {
			fields = map[string]string{}
		}
		docs := docsByApp[app.ID]
		if docs == nil {
			docs = []DocumentInfo{}
		}

		result = append(result, ApplicationWithData{
			ID:          app.ID,
			UserID:      app.UserID,
			VisaType:    app.VisaType,
			Status:      app.Status,
			CurrentStep: app.CurrentStep,
			CreatedAt:   app.CreatedAt,
			UpdatedAt:   app.UpdatedAt,
			Fields:      fields,
			Documents:   docs,
		})
	}

	return result, nil
}
