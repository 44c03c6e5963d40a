package model

import (
	"sort"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lead sources
const (
	LeadSourceConfigurator = "configurator"
	LeadSourceCampaign     = "campaign"
	LeadSourceContactForm  = "contact_form"
	LeadSourceKeuzehulp    = "keuzehulp"
)

// ConfiguratorLead komt uit de AI-configurator op de website.
type ConfiguratorLead struct {
	gorm.Model
	SubmissionID      string `json:"submission_id" gorm:"uniqueIndex"`
	Name              string `json:"name"`
	Email             string `json:"email" gorm:"index"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Service           string `json:"service"`
	Color             string `json:"color"`
	ImageURL          string `json:"image_url"`
	GeneratedImageURL string `json:"generated_image_url"`
	Status            string `json:"status" gorm:"default:'new'"` // new, in_progress, completed, archived
	AdminNotes        string `json:"admin_notes" gorm:"type:text"`
}

// CampaignLead komt uit een advertentiecampagne-formulier.
type CampaignLead struct {
	gorm.Model
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"index"`
	Phone      string `json:"phone"`
	Campaign   string `json:"campaign"`
	Message    string `json:"message" gorm:"type:text"`
	Status     string `json:"status" gorm:"default:'new'"` // new, in_progress, completed, archived
	AdminNotes string `json:"admin_notes" gorm:"type:text"`
}

// ContactLead komt uit het algemene contactformulier.
type ContactLead struct {
	gorm.Model
	Name        string         `json:"name"`
	Email       string         `json:"email" gorm:"index"`
	Phone       string         `json:"phone"`
	ProjectType string         `json:"project_type"`
	Message     string         `json:"message" gorm:"type:text"`
	PhotoURLs   datatypes.JSON `json:"photo_urls"`
	Status      string         `json:"status" gorm:"default:'new'"` // new, in_progress, completed, archived
	AdminNotes  string         `json:"admin_notes" gorm:"type:text"`
}

// KeuzehulpLead komt uit de meerstaps keuzehulp-wizard. Answers bevat de
// vrije wizard-antwoorden als JSON.
type KeuzehulpLead struct {
	gorm.Model
	Name        string         `json:"name"`
	Email       string         `json:"email" gorm:"index"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	ServiceSlug string         `json:"service_slug"`
	Answers     datatypes.JSON `json:"answers"`
	Status      string         `json:"status" gorm:"default:'new'"` // new, contacted, offer_sent, accepted, rejected, archived
	AdminNotes  string         `json:"admin_notes" gorm:"type:text"`
}

// LeadSummary is de genormaliseerde vorm waarin alle vier de bronnen in het
// admin-overzicht verschijnen.
type LeadSummary struct {
	ID        uint      `json:"id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Detail    string    `json:"detail"`
}

func (l ConfiguratorLead) Summary() LeadSummary {
	return LeadSummary{
		ID:        l.ID,
		Source:    LeadSourceConfigurator,
		CreatedAt: l.CreatedAt,
		Status:    l.Status,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Detail:    l.Service,
	}
}

func (l CampaignLead) Summary() LeadSummary {
	return LeadSummary{
		ID:        l.ID,
		Source:    LeadSourceCampaign,
		CreatedAt: l.CreatedAt,
		Status:    l.Status,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Detail:    l.Campaign,
	}
}

func (l ContactLead) Summary() LeadSummary {
	return LeadSummary{
		ID:        l.ID,
		Source:    LeadSourceContactForm,
		CreatedAt: l.CreatedAt,
		Status:    l.Status,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Detail:    l.ProjectType,
	}
}

func (l KeuzehulpLead) Summary() LeadSummary {
	return LeadSummary{
		ID:        l.ID,
		Source:    LeadSourceKeuzehulp,
		CreatedAt: l.CreatedAt,
		Status:    l.Status,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Detail:    l.ServiceSlug,
	}
}

// AggregateLeads voegt de vier bronlijsten samen tot één lijst, gesorteerd op
// created_at aflopend.
func AggregateLeads(configurator []ConfiguratorLead, campaign []CampaignLead, contact []ContactLead, keuzehulp []KeuzehulpLead) []LeadSummary {
	out := make([]LeadSummary, 0, len(configurator)+len(campaign)+len(contact)+len(keuzehulp))
	for _, l := range configurator {
		out = append(out, l.Summary())
	}
	for _, l := range campaign {
		out = append(out, l.Summary())
	}
	for _, l := range contact {
		out = append(out, l.Summary())
	}
	for _, l := range keuzehulp {
		out = append(out, l.Summary())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// FilterLeads past source- en statusfilters toe als pure predicaten over de
// samengevoegde lijst. Een lege filterwaarde betekent "alles".
func FilterLeads(leads []LeadSummary, source, status string) []LeadSummary {
	out := make([]LeadSummary, 0, len(leads))
	for _, l := range leads {
		if source != "" && l.Source != source {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		out = append(out, l)
	}
	return out
}
