package model

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	gorm.Model
	Title           string     `json:"title" gorm:"not null"`
	Description     string     `json:"description" gorm:"type:text"`
	AppointmentType string     `json:"appointment_type"`
	Date            time.Time  `json:"date" gorm:"not null;index"`
	Time            string     `json:"time"`
	Status          string     `json:"status" gorm:"default:'gepland'"` // gepland, voltooid, geannuleerd
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerPhone   string     `json:"customer_phone"`
	Address         string     `json:"address"`
	ContactID       *uint      `json:"contact_id"` // zwakke verwijzing naar Customer, alleen gezet bij type klant
	FollowUpSent    bool       `json:"follow_up_sent" gorm:"default:false"`
	FollowUpSentAt  *time.Time `json:"follow_up_sent_at"`

	Reminders []AppointmentReminder `json:"reminders" gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE"`
}

type AppointmentReminder struct {
	gorm.Model
	AppointmentID uint       `json:"appointment_id" gorm:"index;not null"`
	ReminderDate  time.Time  `json:"reminder_date" gorm:"not null"`
	Status        string     `json:"status" gorm:"default:'gepland'"` // gepland, verzonden, geannuleerd
	SentAt        *time.Time `json:"sent_at"`

	Appointment Appointment `json:"-" gorm:"foreignKey:AppointmentID"`
}
