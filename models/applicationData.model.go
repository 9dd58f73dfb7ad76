package models

import (
	"gorm.io/gorm"
)

// ApplicationFieldValue is one named answer captured during a wizard step.
// StepNumber records which step last wrote the field; reads key on
// (application_id, field_name) only, so a later step may overwrite a field
// written earlier under the same name.
type ApplicationFieldValue struct {
	gorm.Model
	ApplicationID uint   `gorm:"uniqueIndex:idx_application_field;not null" json:"applicationId"`
	StepNumber    int    `gorm:"not null" json:"stepNumber"`
	FieldName     string `gorm:"uniqueIndex:idx_application_field;not null" json:"fieldName"`
	FieldValue    string `gorm:"default:''" json:"fieldValue"`
}

// TableName keeps the table name used by the product's existing schema.
func (ApplicationFieldValue) TableName() string {
	return "application_data"
}
