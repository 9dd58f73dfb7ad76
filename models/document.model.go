package models

import (
	"gorm.io/gorm"
)

// Supporting document types accepted by the wizard.
const (
	DocPassport           = "passport"
	DocPhoto              = "photo"
	DocProofOfIncome      = "proof_of_income"
	DocBankStatement      = "bank_statement"
	DocHealthInsurance    = "health_insurance"
	DocCriminalRecord     = "criminal_record"
	DocAccommodationProof = "accommodation_proof"
	DocEmploymentContract = "employment_contract"
	DocOther              = "other"
)

// Document review statuses.
const (
	DocStatusPending  = "pending"
	DocStatusApproved = "approved"
	DocStatusRejected = "rejected"
)

var documentTypes = map[string]bool{
	DocPassport:           true,
	DocPhoto:              true,
	DocProofOfIncome:      true,
	DocBankStatement:      true,
	DocHealthInsurance:    true,
	DocCriminalRecord:     true,
	DocAccommodationProof: true,
	DocEmploymentContract: true,
	DocOther:              true,
}

// IsValidDocumentType reports whether t is an accepted document type.
func IsValidDocumentType(t string) bool {
	return documentTypes[t]
}

// Document is one uploaded supporting file. Repeated uploads of the same
// type create new rows; the wizard UI shows the latest per type.
type Document struct {
	gorm.Model
	ApplicationID   uint   `gorm:"index;not null" json:"applicationId"`
	DocumentType    string `gorm:"not null" json:"documentType"`
	FileURL         string `gorm:"not null" json:"fileUrl"`
	FileName        string `gorm:"not null" json:"fileName"`
	FileSize        int64  `gorm:"not null" json:"fileSize"`
	Status          string `gorm:"default:'pending';not null" json:"status"`
	RejectionReason string `gorm:"default:''" json:"rejectionReason,omitempty"`
}
