package repository

import (
	"errors"

	"visafy/models"

	"gorm.io/gorm"
)

// DocumentInfo is the document shape handed back to clients.
type DocumentInfo struct {
	ID           uint   `json:"id"`
	FileName     string `json:"fileName"`
	FileURL      string `json:"fileUrl"`
	DocumentType string `json:"documentType"`
	Status       string `json:"status"`
}

// VerifyApplicationOwnership reports whether the application exists and
// belongs to userID. Must be checked before any document mutation.
func VerifyApplicationOwnership(db *gorm.DB, applicationID, userID uint) (bool, error) {
	var app models.Application
	err := db.Select("id").
		Where("id = ? AND user_id = ?", applicationID, userID).
		First(&app).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// CreateDocument inserts a pending document row. Repeated uploads of the same
// type are kept as separate rows; the client decides which one is current.
func CreateDocument(db *gorm.DB, applicationID uint, documentType, fileURL, fileName string, fileSize int64) (*models.Document, error) {
	doc := models.Document{
		ApplicationID: applicationID,
		DocumentType:  documentType,
		FileURL:       fileURL,
		FileName:      fileName,
		FileSize:      fileSize,
		Status:        models.DocStatusPending,
	}

	if err := db.Create(&doc).Error; err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocument fetches one document scoped to its parent application.
func FindDocument(db *gorm.DB, documentID, applicationID uint) (*models.Document, error) {
	var doc models.Document
	err := db.Where("id = ? AND application_id = ?", documentID, applicationID).
		First(&doc).Error
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// DeleteDocument removes the document row scoped to (id, application). A miss
// is reported as gorm.ErrRecordNotFound.
func DeleteDocument(db *gorm.DB, documentID, applicationID uint) error {
	result := db.Where("id = ? AND application_id = ?", documentID, applicationID).
		Delete(&models.Document{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// ListDocumentsByApplicationIDs batch-fetches documents for several
// applications in one query and groups them by application id.
func ListDocumentsByApplicationIDs(db *gorm.DB, applicationIDs []uint) (map[uint][]DocumentInfo, error) {
	result := make(map[uint][]DocumentInfo)
	if len(applicationIDs) == 0 {
		return result, nil
	}

	var docs []models.Document
	if err := db.Where("application_id IN ?", applicationIDs).Order("created_at ASC").Find(&docs).Error; err != nil {
		return nil, err
	}

	for _, doc := range docs {
		result[doc.ApplicationID] = append(result[doc.ApplicationID], DocumentInfo{
			ID:           doc.ID,
			FileName:     doc.FileName,
			FileURL:      doc.FileURL,
			DocumentType: doc.DocumentType,
			Status:       doc.Status,
		})
	}

	return result, nil
}
