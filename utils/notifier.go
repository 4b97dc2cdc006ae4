package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"mentorhub/config"
	"mentorhub/database"
	"mentorhub/models"

	"github.com/go-resty/resty/v2"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Outcome event types handed to the notifier.
const (
	EventModulesAdded    = "MODULES_ADDED"
	EventMenteesEnrolled = "MENTEES_ENROLLED"
	EventAssessmentSaved = "ASSESSMENT_SAVED"
	EventOutcomeComputed = "OUTCOME_COMPUTED"
)

// NotifyEvent records the event and delivers it to the configured webhook in
// the background. Delivery is fire-and-forget: a failed notification never
// rolls back the state change that produced it.
func NotifyEvent(eventType string, payload map[string]interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[NOTIFIER] Failed to marshal %s payload: %v", eventType, err)
		return
	}

	entry := models.NotificationLog{EventType: eventType, Payload: body}
	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("[NOTIFIER] Failed to log %s event: %v", eventType, err)
		return
	}

	if config.AppConfig.WebhookURL == "" {
		return
	}

	go func() {
		client := resty.New()
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"event":   eventType,
				"payload": payload,
			}).
			Post(config.AppConfig.WebhookURL)
		if err != nil {
			log.Printf("[NOTIFIER] Webhook delivery failed for %s: %v", eventType, err)
			return
		}
		if resp.IsError() {
			log.Printf("[NOTIFIER] Webhook returned %d for %s", resp.StatusCode(), eventType)
			return
		}
		database.Database.Db.Model(&entry).Update("delivered", true)
	}()
}

// SendOutcomeEmail mails the mentee their final outcome via SendGrid. Skipped
// silently when no API key is configured.
func SendOutcomeEmail(toEmail, toName, outcome string, score float64) {
	if config.AppConfig.SendGridApiKey == "" || toEmail == "" {
		return
	}

	go func() {
		from := mail.NewEmail("MentorHub", config.AppConfig.EmailSender)
		to := mail.NewEmail(toName, toEmail)
		subject := "Your mentorship assessment outcome"
		plain := fmt.Sprintf("Hello %s,\n\nYour overall assessment outcome is %s with a weighted score of %.1f%%.\n", toName, outcome, score)
		html := fmt.Sprintf("<p>Hello %s,</p><p>Your overall assessment outcome is <b>%s</b> with a weighted score of <b>%.1f%%</b>.</p>", toName, outcome, score)

		message := mail.NewSingleEmail(from, subject, to, plain, html)
		client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("[NOTIFIER] Outcome email to %s failed: %v", toEmail, err)
			return
		}
		if resp.StatusCode >= 400 {
			log.Printf("[NOTIFIER] Outcome email to %s returned %d", toEmail, resp.StatusCode)
		}
	}()
}
