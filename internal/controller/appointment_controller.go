package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/database"
	"wrapsite_backend/pkg/email"
	"wrapsite_backend/pkg/reminder"
	"wrapsite_backend/pkg/status"
	"wrapsite_backend/pkg/webhook"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListAppointments geeft alle afspraken, optioneel gefilterd op status.
func ListAppointments(c *fiber.Ctx) error {
	var appointments []model.Appointment
	query := database.GetDB().Preload("Reminders").Order("date desc")

	if s := c.Query("status"); s != "" {
		query = query.Where("status = ?", s)
	}

	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch appointments",
		})
	}

	return c.JSON(appointments)
}

func GetAppointment(c *fiber.Ctx) error {
	var appointment model.Appointment
	if err := database.GetDB().Preload("Reminders").First(&appointment, c.Params("id")).Error; err != nil {
		return appointmentLookupError(c, err)
	}
	return c.JSON(appointment)
}

// appointmentLookupError vertaalt een First-fout: alleen een ontbrekende rij
// is een 404.
func appointmentLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Could not fetch appointment",
	})
}

type AppointmentInput struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	AppointmentType string `json:"appointment_type"`
	Date            string `json:"date"` // 2006-01-02
	Time            string `json:"time"`
	Status          string `json:"status"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	Address         string `json:"address"`
	ContactID       *uint  `json:"contact_id"`
	ContactType     string `json:"contact_type"`
}

// CreateAppointment maakt een afspraak aan. contact_id wordt alleen
// vastgelegd als het gekoppelde contact een klant is; voor leads blijft de
// koppeling los en worden alleen de contactgegevens gekopieerd.
func CreateAppointment(c *fiber.Ctx) error {
	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Title == "" || input.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and date are required",
		})
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	}

	apptStatus := input.Status
	if apptStatus == "" {
		apptStatus = status.AppointmentGepland
	}
	if !status.IsValidAppointmentStatus(apptStatus) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":          "Invalid status value",
			"valid_statuses": status.AppointmentVocabulary(),
		})
	}

	appointment := model.Appointment{
		Title:           input.Title,
		Description:     input.Description,
		AppointmentType: input.AppointmentType,
		Date:            date,
		Time:            input.Time,
		Status:          apptStatus,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		Address:         input.Address,
	}

	if input.ContactID != nil && input.ContactType == model.ContactTypeKlant {
		var customer model.Customer
		if err := database.GetDB().First(&customer, *input.ContactID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Linked customer not found",
			})
		}
		appointment.ContactID = input.ContactID
		if appointment.CustomerName == "" {
			appointment.CustomerName = customer.Name
		}
		if appointment.CustomerEmail == "" {
			appointment.CustomerEmail = customer.Email
		}
		if appointment.CustomerPhone == "" {
			appointment.CustomerPhone = customer.Phone
		}
	}

	if err := database.GetDB().Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create appointment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointment werkt een afspraak bij. Een statuswijziging naar
// voltooid of geannuleerd annuleert de bijbehorende reminders NIET; dat
// gebeurt alleen expliciet via de cancel-all actie.
func UpdateAppointment(c *fiber.Ctx) error {
	var appointment model.Appointment
	if err := database.GetDB().First(&appointment, c.Params("id")).Error; err != nil {
		return appointmentLookupError(c, err)
	}

	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	updates := map[string]interface{}{}
	if input.Title != "" {
		updates["title"] = input.Title
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.AppointmentType != "" {
		updates["appointment_type"] = input.AppointmentType
	}
	if input.Date != "" {
		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		}
		updates["date"] = date
	}
	if input.Time != "" {
		updates["time"] = input.Time
	}
	if input.Status != "" {
		if !status.IsValidAppointmentStatus(input.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":          "Invalid status value",
				"valid_statuses": status.AppointmentVocabulary(),
			})
		}
		updates["status"] = input.Status
	}
	if input.CustomerName != "" {
		updates["customer_name"] = input.CustomerName
	}
	if input.CustomerEmail != "" {
		updates["customer_email"] = input.CustomerEmail
	}
	if input.CustomerPhone != "" {
		updates["customer_phone"] = input.CustomerPhone
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}

	if err := database.GetDB().Model(&appointment).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update appointment",
		})
	}

	database.GetDB().Preload("Reminders").First(&appointment, appointment.ID)

	return c.JSON(appointment)
}

// DeleteAppointment verwijdert een afspraak; de reminders gaan mee via de
// cascade-constraint.
func DeleteAppointment(c *fiber.Ctx) error {
	if err := database.GetDB().Unscoped().Delete(&model.Appointment{}, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete appointment",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Appointment deleted successfully",
	})
}

// SendReviewRequest vraagt de klant om een review. Alleen beschikbaar voor
// voltooide afspraken met een bekend klant-e-mailadres.
func SendReviewRequest(c *fiber.Ctx) error {
	var appointment model.Appointment
	if err := database.GetDB().First(&appointment, c.Params("id")).Error; err != nil {
		return appointmentLookupError(c, err)
	}

	if appointment.Status != status.AppointmentVoltooid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Review request requires a completed appointment",
		})
	}
	if appointment.CustomerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Appointment has no customer email",
		})
	}
	if appointment.FollowUpSent {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Review request already sent",
		})
	}

	if webhook.GlobalClient != nil {
		webhook.FireAndForget("review_request", func() error {
			return webhook.GlobalClient.SendReviewRequest(webhook.ReviewRequestPayload{
				AppointmentID:    appointment.ID,
				AppointmentTitle: appointment.Title,
				CustomerName:     appointment.CustomerName,
				CustomerEmail:    appointment.CustomerEmail,
			})
		})
	}

	if email.GlobalEmailService != nil {
		if err := email.GlobalEmailService.SendReviewRequestEmail(
			appointment.CustomerEmail, appointment.CustomerName, appointment.Title,
		); err != nil {
			log.Printf("review request email for appointment %d failed: %v", appointment.ID, err)
		}
	}

	now := time.Now()
	if err := database.GetDB().Model(&appointment).Updates(map[string]interface{}{
		"follow_up_sent":    true,
		"follow_up_sent_at": &now,
	}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not mark review request as sent",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Review request sent",
	})
}

// activeReminderDates geeft de datums van niet-geannuleerde reminders voor
// een afspraak.
func activeReminderDates(appointmentID uint) ([]time.Time, error) {
	var reminders []model.AppointmentReminder
	err := database.GetDB().
		Where("appointment_id = ? AND status <> ?", appointmentID, status.ReminderGeannuleerd).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0, len(reminders))
	for _, r := range reminders {
		dates = append(dates, r.ReminderDate)
	}
	return dates, nil
}

// GetReminderCalendar geeft alle dagen van de gevraagde maand met hun
// kiesbaarheid voor nieuwe reminders.
func GetReminderCalendar(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid year",
		})
	}
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(time.Now().Month()))))
	if err != nil || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}

	existing, err := activeReminderDates(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch reminders",
		})
	}

	days := reminder.MonthDays(year, time.Month(month), time.Now(), existing)
	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

func ListReminders(c *fiber.Ctx) error {
	var reminders []model.AppointmentReminder
	if err := database.GetDB().
		Where("appointment_id = ?", c.Params("id")).
		Order("reminder_date asc").
		Find(&reminders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch reminders",
		})
	}
	return c.JSON(reminders)
}

type ScheduleRemindersInput struct {
	Dates []string `json:"dates"` // 2006-01-02
}

// ScheduleReminders plant reminders op de gekozen datums in één batch.
// Datums in het verleden of datums waar al een niet-geannuleerde reminder
// staat worden afgewezen; voor die datums wordt geen insert gedaan.
func ScheduleReminders(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	var appointment model.Appointment
	if err := database.GetDB().First(&appointment, id).Error; err != nil {
		return appointmentLookupError(c, err)
	}

	input := new(ScheduleRemindersInput)
	if err := c.BodyParser(input); err != nil || len(input.Dates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "At least one date is required",
		})
	}

	requested := make([]time.Time, 0, len(input.Dates))
	for _, d := range input.Dates {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date, expected YYYY-MM-DD: " + d,
			})
		}
		requested = append(requested, parsed)
	}

	existing, err := activeReminderDates(appointment.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch reminders",
		})
	}

	valid, rejected := reminder.SplitSchedulable(requested, time.Now(), existing)
	if len(valid) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "No schedulable dates",
			"rejected": rejected,
		})
	}

	reminders := make([]model.AppointmentReminder, 0, len(valid))
	for _, d := range valid {
		reminders = append(reminders, model.AppointmentReminder{
			AppointmentID: appointment.ID,
			ReminderDate:  d,
			Status:        status.ReminderGepland,
		})
	}

	if err := database.GetDB().Create(&reminders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not schedule reminders",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"scheduled": reminders,
		"rejected":  rejected,
	})
}

// SendReminder verstuurt één geplande reminder direct.
func SendReminder(c *fiber.Ctx) error {
	var rem model.AppointmentReminder
	if err := database.GetDB().First(&rem, c.Params("reminder_id")).Error; err != nil {
		return reminderLookupError(c, err)
	}

	if !status.CanTransitionReminder(rem.Status, status.ReminderVerzonden) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only planned reminders can be sent",
		})
	}

	var appointment model.Appointment
	if err := database.GetDB().First(&appointment, rem.AppointmentID).Error; err != nil {
		return appointmentLookupError(c, err)
	}

	if err := reminder.Deliver(appointment, rem); err != nil {
		log.Printf("reminder %d delivery failed: %v", rem.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not send reminder",
		})
	}

	now := time.Now()
	if err := database.GetDB().Model(&rem).Updates(map[string]interface{}{
		"status":  status.ReminderVerzonden,
		"sent_at": &now,
	}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Reminder sent but status update failed",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Reminder sent",
	})
}

func reminderLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reminder not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Could not fetch reminder",
	})
}

// CancelReminder annuleert een geplande reminder.
func CancelReminder(c *fiber.Ctx) error {
	var rem model.AppointmentReminder
	if err := database.GetDB().First(&rem, c.Params("reminder_id")).Error; err != nil {
		return reminderLookupError(c, err)
	}

	if !status.CanTransitionReminder(rem.Status, status.ReminderGeannuleerd) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only planned reminders can be cancelled",
		})
	}

	if err := database.GetDB().Model(&rem).
		Update("status", status.ReminderGeannuleerd).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not cancel reminder",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Reminder cancelled",
	})
}

// DeleteReminder verwijdert een reminder; alleen geannuleerde reminders zijn
// verwijderbaar.
func DeleteReminder(c *fiber.Ctx) error {
	var rem model.AppointmentReminder
	if err := database.GetDB().First(&rem, c.Params("reminder_id")).Error; err != nil {
		return reminderLookupError(c, err)
	}

	if !status.CanDeleteReminder(rem.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only cancelled reminders can be deleted",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&rem).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete reminder",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Reminder deleted",
	})
}

// BulkSendReminders verstuurt alle geplande reminders van een afspraak. Elke
// verzending wordt onafhankelijk geprobeerd; een mislukking breekt de batch
// niet af en al gelukte items blijven verzonden.
func BulkSendReminders(c *fiber.Ctx) error {
	var appointment model.Appointment
	if err := database.GetDB().First(&appointment, c.Params("id")).Error; err != nil {
		return appointmentLookupError(c, err)
	}

	var planned []model.AppointmentReminder
	if err := database.GetDB().
		Where("appointment_id = ? AND status = ?", appointment.ID, status.ReminderGepland).
		Find(&planned).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch reminders",
		})
	}

	var report reminder.SendReport
	for _, rem := range planned {
		if err := reminder.Deliver(appointment, rem); err != nil {
			log.Printf("bulk send: reminder %d failed: %v", rem.ID, err)
			report.Failure()
			continue
		}
		now := time.Now()
		if err := database.GetDB().Model(&rem).Updates(map[string]interface{}{
			"status":  status.ReminderVerzonden,
			"sent_at": &now,
		}).Error; err != nil {
			log.Printf("bulk send: reminder %d sent but status update failed: %v", rem.ID, err)
			report.Failure()
			continue
		}
		report.Success()
	}

	return c.JSON(fiber.Map{
		"message": report.String(),
		"sent":    report.Sent,
		"failed":  report.Failed,
	})
}

// CancelAllReminders annuleert alle geplande reminders van een afspraak in
// één actie. Dit is de enige weg waarlangs reminders en masse geannuleerd
// worden; een statuswijziging van de afspraak doet dit nooit impliciet.
func CancelAllReminders(c *fiber.Ctx) error {
	result := database.GetDB().Model(&model.AppointmentReminder{}).
		Where("appointment_id = ? AND status = ?", c.Params("id"), status.ReminderGepland).
		Update("status", status.ReminderGeannuleerd)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not cancel reminders",
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Reminders cancelled",
		"cancelled": result.RowsAffected,
	})
}
