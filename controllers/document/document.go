package documentController

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"visafy/database"
	"visafy/middleware"
	"visafy/models"
	"visafy/repository"
	"visafy/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxFileSize caps uploads at 10 MiB.
const MaxFileSize = 10 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var allowedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// Upload stores a supporting document: ownership gate, type and size
// validation, blob save, then the pending document row.
func Upload(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File, application ID, and document type are required!", nil)
	}

	applicationIdValue := c.FormValue("applicationId")
	documentType := c.FormValue("documentType")
	if applicationIdValue == "" || documentType == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File, application ID, and document type are required!", nil)
	}

	applicationId64, err := strconv.ParseUint(applicationIdValue, 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application ID!", nil)
	}
	applicationId := uint(applicationId64)

	if !models.IsValidDocumentType(documentType) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid document type!", nil)
	}

	db := database.Database.Db

	// Verify application ownership before any side effect
	owned, err := repository.VerifyApplicationOwnership(db, applicationId, userId)
	if err != nil {
		log.Printf("Error verifying application ownership: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed!", nil)
	}
	if !owned {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	// File type validation: extension and declared MIME type must both be
	// allow-listed, whatever the file size
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] || !allowedMimeTypes[file.Header.Get("Content-Type")] {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File type not allowed. Only PDF, JPG, and PNG files are accepted.", nil)
	}

	// File size validation
	if file.Size > MaxFileSize {
		return middleware.JsonResponse(c, fiber.StatusRequestEntityTooLarge, false, "File too large. Maximum size is 10MB.", nil)
	}

	src, err := file.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed!", nil)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed!", nil)
	}

	pathHint := fmt.Sprintf("documents/%d/%s%s", applicationId, uuid.NewString(), ext)
	fileURL, err := storage.Store.Save(pathHint, data)
	if err != nil {
		log.Printf("Error saving file to blob store: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed!", nil)
	}

	doc, err := repository.CreateDocument(db, applicationId, documentType, fileURL, file.Filename, file.Size)
	if err != nil {
		log.Printf("Error saving document to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document uploaded successfully.", fiber.Map{
		"document": repository.DocumentInfo{
			ID:           doc.ID,
			FileName:     doc.FileName,
			FileURL:      doc.FileURL,
			DocumentType: doc.DocumentType,
			Status:       doc.Status,
		},
	})
}

// Delete removes a document. The blob goes first, best-effort: if the store
// is unreachable the row is deleted anyway, so a user is never stuck with a
// broken reference.
func Delete(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDeleteDocument").(*struct {
		DocumentID    uint `json:"documentId"`
		ApplicationID uint `json:"applicationId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	owned, err := repository.VerifyApplicationOwnership(db, reqData.ApplicationID, userId)
	if err != nil {
		log.Printf("Error verifying application ownership: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete document!", nil)
	}
	if !owned {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	doc, err := repository.FindDocument(db, reqData.DocumentID, reqData.ApplicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
	}
	if err != nil {
		log.Printf("Error fetching document: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete document!", nil)
	}

	// Best-effort blob cleanup; the row goes regardless
	if err := storage.Store.Delete(doc.FileURL); err != nil {
		log.Printf("Error deleting file from blob store (continuing): %v", err)
	}

	if err := repository.DeleteDocument(db, reqData.DocumentID, reqData.ApplicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
		}
		log.Printf("Error deleting document: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete document!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document deleted successfully.", nil)
}
