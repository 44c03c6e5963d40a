package controller

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/config"
	"wrapsite_backend/pkg/database"
	"wrapsite_backend/pkg/email"
	"wrapsite_backend/pkg/realtime"
	"wrapsite_backend/pkg/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
)

var validate = validator.New()

var adminEmail string

func InitSubmissionController(cfg config.EmailConfig) {
	adminEmail = cfg.AdminEmail
}

// notifyAdmin stuurt best-effort een notificatiemail naar de admin; fouten
// worden alleen gelogd.
func notifyAdmin(source, name, emailAddr, phone, detail string) {
	if adminEmail == "" || email.GlobalEmailService == nil {
		return
	}
	go func() {
		if err := email.GlobalEmailService.SendLeadNotificationEmail(
			adminEmail, source, name, emailAddr, phone, detail,
		); err != nil {
			log.Printf("admin notification for %s submission failed: %v", source, err)
		}
	}()
}

type ConfiguratorInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Service  string `json:"service" validate:"required"`
	Color    string `json:"color" validate:"required"`
	ImageURL string `json:"image_url" validate:"required,url"`
}

// CreateConfiguratorSubmission verwerkt een inzending van de AI-configurator:
// één nieuwe leadrij met status new, precies één kostregel van 0,15, en een
// fire-and-forget trigger voor de beeldgeneratie. Webhookfouten worden
// gelogd, niet opnieuw geprobeerd.
func CreateConfiguratorSubmission(c *fiber.Ctx) error {
	input := new(ConfiguratorInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	submissionID := uuid.NewString()

	lead := model.ConfiguratorLead{
		SubmissionID: submissionID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		Service:      input.Service,
		Color:        input.Color,
		ImageURL:     input.ImageURL,
		Status:       "new",
	}

	if err := database.GetDB().Create(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not store submission",
			"details": err.Error(),
		})
	}

	// Kostregel is append-only en losgekoppeld van de lead: verwijderen van
	// de lead haalt de kosten nooit terug.
	usage := model.AIUsageRecord{
		SubmissionID: submissionID,
		CostEUR:      model.ConfiguratorCostPerUse,
	}
	if err := database.GetDB().Create(&usage).Error; err != nil {
		log.Printf("could not record AI usage for %s: %v", submissionID, err)
	}

	if webhook.GlobalClient != nil {
		webhook.FireAndForget("image_generation", func() error {
			return webhook.GlobalClient.TriggerImageGeneration(
				submissionID, input.ImageURL, input.Service, input.Color,
			)
		})
	}

	notifyAdmin(model.LeadSourceConfigurator, input.Name, input.Email, input.Phone, input.Service)

	leadCache.Invalidate()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"submission_id": submissionID,
	})
}

type ConfiguratorResultInput struct {
	GeneratedImageURL string `json:"generated_image_url" validate:"required,url"`
}

// CompleteConfiguratorSubmission is de callback van de beeldgeneratie: de
// leadrij krijgt de gegenereerde afbeelding en eventuele wachters worden via
// het realtime-kanaal op de hoogte gebracht.
func CompleteConfiguratorSubmission(c *fiber.Ctx) error {
	submissionID := c.Params("submission_id")

	input := new(ConfiguratorResultInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	var lead model.ConfiguratorLead
	if err := database.GetDB().Where("submission_id = ?", submissionID).First(&lead).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Submission not found",
		})
	}

	if err := database.GetDB().Model(&lead).
		Update("generated_image_url", input.GeneratedImageURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not store result",
		})
	}

	if realtime.GlobalFeed != nil {
		if err := realtime.GlobalFeed.PublishUpdate(c.Context(), realtime.SubmissionUpdate{
			SubmissionID:      submissionID,
			Status:            "ready",
			GeneratedImageURL: input.GeneratedImageURL,
		}); err != nil {
			log.Printf("could not publish submission update for %s: %v", submissionID, err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// WaitConfiguratorResult wacht op het resultaat van een inzending. Het
// abonnement op het realtime-kanaal wordt opgezet voordat de rij gelezen
// wordt en altijd weer afgebroken bij terugkeer of timeout.
func WaitConfiguratorResult(c *fiber.Ctx) error {
	submissionID := c.Params("submission_id")

	timeoutSec, err := strconv.Atoi(c.Query("timeout", "30"))
	if err != nil || timeoutSec < 1 || timeoutSec > 120 {
		timeoutSec = 30
	}

	ctx, cancel := context.WithTimeout(c.Context(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	// Eerst abonneren, dan pas de rij lezen. Een update die tussen de
	// leesactie en het abonnement gepubliceerd wordt gaat zo niet verloren.
	var waiter *realtime.Waiter
	if realtime.GlobalFeed != nil {
		w, err := realtime.GlobalFeed.Listen(ctx, submissionID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not wait for result",
			})
		}
		waiter = w
		defer waiter.Close()
	}

	var lead model.ConfiguratorLead
	if err := database.GetDB().Where("submission_id = ?", submissionID).First(&lead).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Submission not found",
		})
	}
	if lead.GeneratedImageURL != "" {
		return c.JSON(fiber.Map{
			"status":              "ready",
			"generated_image_url": lead.GeneratedImageURL,
		})
	}

	if waiter == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Realtime feed not available",
		})
	}

	update, err := waiter.Wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
				"status": "pending",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not wait for result",
		})
	}

	return c.JSON(fiber.Map{
		"status":              update.Status,
		"generated_image_url": update.GeneratedImageURL,
	})
}

type ContactFormInput struct {
	Name      string   `json:"name" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Phone     string   `json:"phone"`
	Type      string   `json:"type" validate:"required"`
	Message   string   `json:"message"`
	PhotoURLs []string `json:"photo_urls" validate:"omitempty,dive,url"`
}

// CreateContactSubmission verwerkt het algemene contactformulier.
func CreateContactSubmission(c *fiber.Ctx) error {
	input := new(ContactFormInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	lead := model.ContactLead{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		ProjectType: input.Type,
		Message:     input.Message,
		Status:      "new",
	}
	if len(input.PhotoURLs) > 0 {
		encoded, err := json.Marshal(input.PhotoURLs)
		if err == nil {
			lead.PhotoURLs = datatypes.JSON(encoded)
		}
	}

	if err := database.GetDB().Create(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not store submission",
			"details": err.Error(),
		})
	}

	notifyAdmin(model.LeadSourceContactForm, input.Name, input.Email, input.Phone, input.Type)
	leadCache.Invalidate()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"submission_id": lead.ID,
	})
}

type KeuzehulpInput struct {
	Name    string            `json:"name" validate:"required"`
	Email   string            `json:"email" validate:"required,email"`
	Phone   string            `json:"phone"`
	Address string            `json:"address"`
	Service string            `json:"service" validate:"required"`
	Answers map[string]string `json:"answers"`
}

// CreateKeuzehulpSubmission verwerkt een afgeronde keuzehulp-wizard. De
// gekozen dienst wordt als slug vastgelegd.
func CreateKeuzehulpSubmission(c *fiber.Ctx) error {
	input := new(KeuzehulpInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	lead := model.KeuzehulpLead{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		ServiceSlug: slug.Make(input.Service),
		Status:      "new",
	}
	if len(input.Answers) > 0 {
		encoded, err := json.Marshal(input.Answers)
		if err == nil {
			lead.Answers = datatypes.JSON(encoded)
		}
	}

	if err := database.GetDB().Create(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not store submission",
			"details": err.Error(),
		})
	}

	notifyAdmin(model.LeadSourceKeuzehulp, input.Name, input.Email, input.Phone, lead.ServiceSlug)
	leadCache.Invalidate()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"submission_id": lead.ID,
	})
}

type CampaignInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Campaign string `json:"campaign" validate:"required"`
	Message  string `json:"message"`
}

// CreateCampaignSubmission verwerkt een advertentiecampagne-formulier.
func CreateCampaignSubmission(c *fiber.Ctx) error {
	input := new(CampaignInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	lead := model.CampaignLead{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Campaign: input.Campaign,
		Message:  input.Message,
		Status:   "new",
	}

	if err := database.GetDB().Create(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Could not store submission",
			"details": err.Error(),
		})
	}

	notifyAdmin(model.LeadSourceCampaign, input.Name, input.Email, input.Phone, input.Campaign)
	leadCache.Invalidate()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"submission_id": lead.ID,
	})
}
