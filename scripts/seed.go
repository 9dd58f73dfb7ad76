package main

import (
	"log"

	"visafy/config"
	"visafy/database"
	"visafy/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the demo account: one user with an under-review digital nomad
// application, its wizard answers and two reviewed documents.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	log.Println("Seeding database...")

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	demoUser := models.User{
		FullName: "Maria Garcia",
		Email:    "demo@visafy.com",
		Phone:    "+34 612 345 678",
		Role:     models.RoleClient,
		Password: string(passwordHash),
	}
	if err := db.Create(&demoUser).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Println("Created demo user: demo@visafy.com / password123")

	visaType := models.VisaDigitalNomad
	app := models.Application{
		UserID:      demoUser.ID,
		VisaType:    &visaType,
		Status:      models.StatusUnderReview,
		CurrentStep: models.MaxStep,
	}
	if err := db.Create(&app).Error; err != nil {
		log.Fatalf("Failed to create demo application: %v", err)
	}

	fields := []models.ApplicationFieldValue{
		{ApplicationID: app.ID, StepNumber: 1, FieldName: "visaType", FieldValue: models.VisaDigitalNomad},
		{ApplicationID: app.ID, StepNumber: 2, FieldName: "fullName", FieldValue: "Maria Garcia"},
		{ApplicationID: app.ID, StepNumber: 2, FieldName: "dateOfBirth", FieldValue: "1992-03-15"},
		{ApplicationID: app.ID, StepNumber: 2, FieldName: "nationality", FieldValue: "United States"},
		{ApplicationID: app.ID, StepNumber: 2, FieldName: "passportNumber", FieldValue: "AB1234567"},
		{ApplicationID: app.ID, StepNumber: 2, FieldName: "passportExpiry", FieldValue: "2030-03-15"},
		{ApplicationID: app.ID, StepNumber: 2, FieldName: "phone", FieldValue: "+34 612 345 678"},
		{ApplicationID: app.ID, StepNumber: 2, FieldName: "email", FieldValue: "demo@visafy.com"},
		{ApplicationID: app.ID, StepNumber: 2, FieldName: "country", FieldValue: "United States"},
		{ApplicationID: app.ID, StepNumber: 3, FieldName: "remoteEmployer", FieldValue: "Acme Corp"},
		{ApplicationID: app.ID, StepNumber: 3, FieldName: "monthlyIncome", FieldValue: "4500"},
		{ApplicationID: app.ID, StepNumber: 4, FieldName: "fundSource", FieldValue: "employment"},
		{ApplicationID: app.ID, StepNumber: 4, FieldName: "bankBalance", FieldValue: "32000"},
	}
	if err := db.Create(&fields).Error; err != nil {
		log.Fatalf("Failed to seed application data: %v", err)
	}

	docs := []models.Document{
		{
			ApplicationID: app.ID,
			DocumentType:  models.DocPassport,
			FileURL:       "/uploads/documents/seed/passport.pdf",
			FileName:      "passport.pdf",
			FileSize:      1842003,
			Status:        models.DocStatusApproved,
		},
		{
			ApplicationID: app.ID,
			DocumentType:  models.DocBankStatement,
			FileURL:       "/uploads/documents/seed/bank_statement.pdf",
			FileName:      "bank_statement.pdf",
			FileSize:      903411,
			Status:        models.DocStatusPending,
		},
	}
	if err := db.Create(&docs).Error; err != nil {
		log.Fatalf("Failed to seed documents: %v", err)
	}

	log.Println("Seeding completed.")
}
