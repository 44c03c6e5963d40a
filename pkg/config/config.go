package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	SMTP     SMTPConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Webhooks WebhookConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
	AdminEmail   string
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type StorageConfig struct {
	Bucket string
	Region string
}

type WebhookConfig struct {
	ImageGenerationURL string
	ReminderURL        string
	ReviewRequestURL   string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "WrapStudio <noreply@wrapstudio.nl>"),
			AdminEmail:   getEnv("ADMIN_EMAIL", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Storage: StorageConfig{
			Bucket: getEnv("S3_BUCKET", "wrapstudio-uploads"),
			Region: getEnv("S3_REGION", "eu-central-1"),
		},
		Webhooks: WebhookConfig{
			ImageGenerationURL: getEnv("IMAGE_GENERATION_WEBHOOK_URL", ""),
			ReminderURL:        getEnv("REMINDER_WEBHOOK_URL", ""),
			ReviewRequestURL:   getEnv("REVIEW_REQUEST_WEBHOOK_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
