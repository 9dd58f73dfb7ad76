package utils

import (
	"fmt"
	"log"
	"time"

	"visafy/config"
	"visafy/database"
	"visafy/models"

	"github.com/robfig/cron/v3"
)

// InitializeDraftReminderScheduler sets up the stale-draft reminder scheduler
func InitializeDraftReminderScheduler() {
	log.Println("[DRAFT-REMINDER] Initializing draft reminder scheduler...")

	c := cron.New()

	// Run daily at 9 AM to nudge owners of stale drafts
	c.AddFunc("0 9 * * *", func() {
		log.Println("[DRAFT-REMINDER] Running daily stale draft check...")
		ProcessStaleDrafts()
	})

	c.Start()
	log.Println("[DRAFT-REMINDER] Draft reminder scheduler started - runs daily at 9 AM")
}

// ProcessStaleDrafts emails owners of draft applications untouched for the
// configured number of days. Reads only; no application is mutated.
func ProcessStaleDrafts() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.DraftReminderDays)

	var staleDrafts []models.Application
	if err := db.
		Where("status = ? AND updated_at < ?", models.StatusDraft, cutoff).
		Find(&staleDrafts).Error; err != nil {
		log.Printf("[DRAFT-REMINDER] Error fetching stale drafts: %v", err)
		return
	}

	log.Printf("[DRAFT-REMINDER] Found %d stale drafts", len(staleDrafts))

	for _, app := range staleDrafts {
		var user models.User
		if err := db.First(&user, app.UserID).Error; err != nil {
			log.Printf("[DRAFT-REMINDER] Error fetching user %d: %v", app.UserID, err)
			continue
		}

		body := fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>You started a visa application on %s but haven't finished it yet.</p>
			<p>Your answers so far are saved — log back in to pick up at step %d.</p>`,
			user.FullName, app.CreatedAt.Format("January 2, 2006"), app.CurrentStep)

		if err := SendEmail([]string{user.Email}, "Your visa application is waiting", getEmailTemplate("Finish your application", body)); err != nil {
			log.Printf("[DRAFT-REMINDER] Error emailing %s: %v", user.Email, err)
		}
	}
}
