package cron

import (
	"log"
	"time"

	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/database"
	"wrapsite_backend/pkg/reminder"
	"wrapsite_backend/pkg/status"

	"github.com/robfig/cron/v3"
)

// InitReminderDispatchCron verstuurt elke ochtend de reminders die vandaag
// (of eerder) gepland staan.
func InitReminderDispatchCron() {
	c := cron.New()

	_, err := c.AddFunc("0 8 * * *", func() {
		dispatchDueReminders()
	})

	if err != nil {
		log.Printf("Could not initialize reminder dispatch cron: %v", err)
		return
	}

	c.Start()
}

func dispatchDueReminders() {
	log.Println("Dispatching due reminders...")

	today := reminder.DateOnly(time.Now())

	var due []model.AppointmentReminder
	err := database.GetDB().
		Where("status = ? AND reminder_date <= ?", status.ReminderGepland, today).
		Preload("Appointment").
		Find(&due).Error
	if err != nil {
		log.Printf("Error fetching due reminders: %v", err)
		return
	}

	if len(due) == 0 {
		return
	}

	// Elke reminder onafhankelijk proberen; één mislukking stopt de rest niet.
	var report reminder.SendReport
	for _, rem := range due {
		if err := reminder.Deliver(rem.Appointment, rem); err != nil {
			log.Printf("Reminder %d dispatch failed: %v", rem.ID, err)
			report.Failure()
			continue
		}
		now := time.Now()
		if err := database.GetDB().Model(&rem).Updates(map[string]interface{}{
			"status":  status.ReminderVerzonden,
			"sent_at": &now,
		}).Error; err != nil {
			log.Printf("Reminder %d sent but status update failed: %v", rem.ID, err)
			report.Failure()
			continue
		}
		report.Success()
	}

	log.Printf("Reminder dispatch done: %s", report.String())
}
