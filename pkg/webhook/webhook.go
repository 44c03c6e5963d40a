package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"wrapsite_backend/pkg/config"
)

// Client verstuurt fire-and-forget JSON-webhooks naar geconfigureerde
// endpoints. Fouten worden gelogd, niet opnieuw geprobeerd of gequeued.
// Elke call heeft een timeout zodat een hangend endpoint geen handler
// blokkeert.
type Client struct {
	urls   config.WebhookConfig
	client *http.Client
}

var GlobalClient *Client

func InitClient(urls config.WebhookConfig) {
	GlobalClient = &Client{
		urls:   urls,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) post(url string, payload interface{}) error {
	if url == "" {
		return fmt.Errorf("webhook URL not configured")
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshaling webhook payload: %v", err)
	}

	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error sending webhook: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook error: status %d, body %s", resp.StatusCode, string(body))
	}

	return nil
}

type ImageGenerationPayload struct {
	SubmissionID string `json:"submission_id"`
	ImageURL     string `json:"image_url"`
	Service      string `json:"service"`
	Color        string `json:"color"`
}

// TriggerImageGeneration start de AI-beeldgeneratie voor een
// configurator-inzending.
func (c *Client) TriggerImageGeneration(submissionID, imageURL, service, color string) error {
	return c.post(c.urls.ImageGenerationURL, ImageGenerationPayload{
		SubmissionID: submissionID,
		ImageURL:     imageURL,
		Service:      service,
		Color:        color,
	})
}

type ReminderPayload struct {
	ReminderID       uint      `json:"reminder_id"`
	AppointmentID    uint      `json:"appointment_id"`
	AppointmentTitle string    `json:"appointment_title"`
	ReminderDate     time.Time `json:"reminder_date"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerPhone    string    `json:"customer_phone"`
}

// SendReminderNudge verstuurt de herinneringswebhook voor een afspraak.
func (c *Client) SendReminderNudge(p ReminderPayload) error {
	return c.post(c.urls.ReminderURL, p)
}

type ReviewRequestPayload struct {
	AppointmentID    uint   `json:"appointment_id"`
	AppointmentTitle string `json:"appointment_title"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
}

// SendReviewRequest vraagt de klant om een review na een voltooide afspraak.
func (c *Client) SendReviewRequest(p ReviewRequestPayload) error {
	return c.post(c.urls.ReviewRequestURL, p)
}

// FireAndForget voert fn uit in een goroutine en logt een eventuele fout.
func FireAndForget(name string, fn func() error) {
	go func() {
		if err := fn(); err != nil {
			log.Printf("webhook %s failed: %v", name, err)
		}
	}()
}
