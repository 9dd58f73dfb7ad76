package models

import (
	"gorm.io/gorm"
)

// Visa types offered by the product.
const (
	VisaWork                = "work_visa"
	VisaGolden              = "golden_visa"
	VisaStudent             = "student_visa"
	VisaFamilyReunification = "family_reunification"
	VisaDigitalNomad        = "digital_nomad"
	VisaNonLucrative        = "non_lucrative"
)

// Application statuses. Transitions past "submitted" happen in the review
// back office, not in this service.
const (
	StatusDraft                = "draft"
	StatusSubmitted            = "submitted"
	StatusUnderReview          = "under_review"
	StatusAdditionalInfoNeeded = "additional_info_needed"
	StatusApproved             = "approved"
	StatusRejected             = "rejected"
)

const (
	MinStep = 1
	MaxStep = 6
)

// VisaLabels maps visa type codes to display names.
var VisaLabels = map[string]string{
	VisaWork:                "Work Visa",
	VisaGolden:              "Golden Visa",
	VisaStudent:             "Student Visa",
	VisaDigitalNomad:        "Digital Nomad Visa",
	VisaFamilyReunification: "Family Reunification",
	VisaNonLucrative:        "Non-Lucrative Visa",
}

// StatusLabels maps application status codes to display names.
var StatusLabels = map[string]string{
	StatusDraft:                "Draft",
	StatusSubmitted:            "Submitted",
	StatusUnderReview:          "Under Review",
	StatusAdditionalInfoNeeded: "Info Needed",
	StatusApproved:             "Approved",
	StatusRejected:             "Rejected",
}

// IsValidVisaType reports whether t is one of the offered visa types.
func IsValidVisaType(t string) bool {
	_, ok := VisaLabels[t]
	return ok
}

type Application struct {
	gorm.Model
	UserID      uint    `gorm:"index;not null" json:"userId"`
	VisaType    *string `json:"visaType"` // nil until step 1 completes
	Status      string  `gorm:"default:'draft';not null" json:"status"`
	CurrentStep int     `gorm:"default:1;not null" json:"currentStep"`
}
