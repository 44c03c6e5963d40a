// pkg/email/smtp.go
package email

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

// sendViaSMTP is het terugvalpad wanneer er geen Resend API key is maar wel
// SMTP-credentials.
func (s *EmailService) sendViaSMTP(to, subject, html string) error {
	port, err := strconv.Atoi(s.smtp.Port)
	if err != nil {
		return fmt.Errorf("invalid SMTP port %q: %v", s.smtp.Port, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.smtp.Host, port, s.smtp.User, s.smtp.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP send error: %v", err)
	}
	return nil
}
