// pkg/email/email.go
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"

	"wrapsite_backend/pkg/config"
)

type EmailService struct {
	apiKey    string
	smtp      config.SMTPConfig
	from      string
	templates *template.Template
	client    *http.Client
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type LeadNotificationData struct {
	Source     string
	LeadName   string
	LeadEmail  string
	LeadPhone  string
	LeadDetail string
}

type ReminderData struct {
	AppointmentTitle string
	AppointmentDate  time.Time
	CustomerName     string
}

type ReviewRequestData struct {
	CustomerName     string
	AppointmentTitle string
}

func NewEmailService(cfg config.EmailConfig, smtp config.SMTPConfig) (*EmailService, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    cfg.ResendAPIKey,
		smtp:      smtp,
		from:      cfg.From,
		templates: templates,
		client:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	if s.apiKey != "" {
		return s.sendViaResend(to, subject, body.String())
	}
	if s.smtp.Host != "" {
		return s.sendViaSMTP(to, subject, body.String())
	}

	// Geen mailcredentials geconfigureerd: alleen loggen, niet falen.
	log.Printf("email (not sent, no credentials): to=%s subject=%q", to, subject)
	return nil
}

func (s *EmailService) sendViaResend(to, subject, html string) error {
	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    html,
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	return nil
}

// Email sending methods
func (s *EmailService) SendLeadNotificationEmail(adminEmail, source, leadName, leadEmail, leadPhone, leadDetail string) error {
	data := LeadNotificationData{
		Source:     source,
		LeadName:   leadName,
		LeadEmail:  leadEmail,
		LeadPhone:  leadPhone,
		LeadDetail: leadDetail,
	}
	return s.sendTemplateEmail(adminEmail, "Nieuwe aanvraag via de website 📋", "lead_notification.html", data)
}

func (s *EmailService) SendReminderEmail(to, customerName, appointmentTitle string, date time.Time) error {
	data := ReminderData{
		AppointmentTitle: appointmentTitle,
		AppointmentDate:  date,
		CustomerName:     customerName,
	}
	subject := fmt.Sprintf("Herinnering: %s op %s", appointmentTitle, date.Format("02-01-2006"))
	return s.sendTemplateEmail(to, subject, "reminder.html", data)
}

func (s *EmailService) SendReviewRequestEmail(to, customerName, appointmentTitle string) error {
	data := ReviewRequestData{
		CustomerName:     customerName,
		AppointmentTitle: appointmentTitle,
	}
	return s.sendTemplateEmail(to, "Hoe is uw wrap bevallen? ⭐", "review_request.html", data)
}
