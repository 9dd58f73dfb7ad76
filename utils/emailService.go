package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"visafy/config"
	"visafy/models"

	"gorm.io/gorm"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" {
		log.Println("Email sender not configured, skipping email:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Visafy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}

	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D3557; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3557; line-height: 1.6; }
			.content h2 { color: #1D3557; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #457B9D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Visafy</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; Visafy. This is an automated message, please do not reply.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered user
func SendWelcomeEmail(email, fullName string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to Visafy! Your account is ready.</p>
		<p>Start your visa application whenever you like — your progress is saved at every step, so you can always come back and pick up where you left off.</p>`,
		fullName)

	if err := SendEmail([]string{email}, "Welcome to Visafy", getEmailTemplate("Welcome aboard", body)); err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
	}
}

// SendSubmissionEmail confirms a submitted application to its owner
func SendSubmissionEmail(db *gorm.DB, userID, applicationID uint) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		log.Printf("Error fetching user %d for submission email: %v", userID, err)
		return
	}

	var app models.Application
	if err := db.First(&app, applicationID).Error; err != nil {
		log.Printf("Error fetching application %d for submission email: %v", applicationID, err)
		return
	}

	visaLabel := "your visa"
	if app.VisaType != nil {
		if label, ok := models.VisaLabels[*app.VisaType]; ok {
			visaLabel = label
		}
	}

	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your %s application has been submitted.</p>
		<div class="info-box">Application #%d is now with our review team. We will email you as soon as its status changes.</div>`,
		user.FullName, visaLabel, app.ID)

	if err := SendEmail([]string{user.Email}, "Application submitted", getEmailTemplate("Application received", body)); err != nil {
		log.Printf("Error sending submission email to %s: %v", user.Email, err)
	}
}
