package reminder

import (
	"fmt"
	"log"

	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/email"
	"wrapsite_backend/pkg/webhook"
)

// Deliver verstuurt één herinnering: de webhook is leidend, de e-mail is
// best-effort als er een klant-e-mailadres bekend is. De aanroeper werkt na
// succes zelf de reminderstatus bij.
func Deliver(appt model.Appointment, rem model.AppointmentReminder) error {
	if webhook.GlobalClient == nil {
		return fmt.Errorf("webhook client not initialized")
	}

	err := webhook.GlobalClient.SendReminderNudge(webhook.ReminderPayload{
		ReminderID:       rem.ID,
		AppointmentID:    appt.ID,
		AppointmentTitle: appt.Title,
		ReminderDate:     rem.ReminderDate,
		CustomerName:     appt.CustomerName,
		CustomerEmail:    appt.CustomerEmail,
		CustomerPhone:    appt.CustomerPhone,
	})
	if err != nil {
		return err
	}

	if appt.CustomerEmail != "" && email.GlobalEmailService != nil {
		if err := email.GlobalEmailService.SendReminderEmail(
			appt.CustomerEmail, appt.CustomerName, appt.Title, rem.ReminderDate,
		); err != nil {
			log.Printf("reminder email for appointment %d failed: %v", appt.ID, err)
		}
	}

	return nil
}
