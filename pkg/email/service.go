// pkg/email/service.go
package email

import "wrapsite_backend/pkg/config"

var GlobalEmailService *EmailService

func InitEmailService(cfg config.EmailConfig, smtp config.SMTPConfig) error {
	service, err := NewEmailService(cfg, smtp)
	if err != nil {
		return err
	}
	GlobalEmailService = service
	return nil
}
