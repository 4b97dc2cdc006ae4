package utils

import (
	"log"
	"time"

	"mentorhub/database"
	"mentorhub/models/training"
	"mentorhub/services"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CLASS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processClassWindows moves class cohorts along their date windows:
// DRAFT cohorts whose start date has arrived become ACTIVE, ACTIVE cohorts
// past their end date become COMPLETED. Transitions go through the lifecycle
// service so the usual rules apply.
func processClassWindows() {
	db := database.Database.Db
	now := time.Now()

	var toActivate []training.ClassCohort
	if err := db.Where("status = ? AND is_deleted = ? AND start_date IS NOT NULL AND start_date <= ?",
		training.ClassDraft, false, now).Find(&toActivate).Error; err != nil {
		logScheduler("Error fetching draft classes: " + err.Error())
		return
	}
	for _, class := range toActivate {
		if _, err := services.TransitionClass(db, class.ID, training.ClassActive); err != nil {
			logScheduler("Failed to activate class " + class.Name + ": " + err.Error())
			continue
		}
		logScheduler("Class " + class.Name + " auto-ACTIVATED")
	}

	var toComplete []training.ClassCohort
	if err := db.Where("status = ? AND is_deleted = ? AND end_date IS NOT NULL AND end_date < ?",
		training.ClassActive, false, now).Find(&toComplete).Error; err != nil {
		logScheduler("Error fetching active classes: " + err.Error())
		return
	}
	for _, class := range toComplete {
		if _, err := services.TransitionClass(db, class.ID, training.ClassCompleted); err != nil {
			logScheduler("Failed to complete class " + class.Name + ": " + err.Error())
			continue
		}
		logScheduler("Class " + class.Name + " auto-COMPLETED")
	}
}

// StartClassScheduler runs the class window check hourly.
func StartClassScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", processClassWindows); err != nil {
		log.Fatalf("Failed to register class scheduler: %v", err)
	}

	c.Start()
	logScheduler("Class scheduler started (hourly)")
}
