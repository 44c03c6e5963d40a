package model

import (
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Customer is een klantrecord. Wordt alleen aangemaakt via expliciete
// conversie vanuit een lead of via directe invoer door de admin.
type Customer struct {
	gorm.Model
	Name        string         `json:"name" gorm:"not null"`
	Email       string         `json:"email" gorm:"index"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	LeadSource  string         `json:"lead_source"`
	LeadID      *uint          `json:"lead_id"`
	ProjectType string         `json:"project_type"`
	Status      string         `json:"status" gorm:"default:'active'"`
	AdminNotes  string         `json:"admin_notes" gorm:"type:text"`
	PhotoURLs   datatypes.JSON `json:"photo_urls"`
}

// ToCustomer mapt configurator-velden naar een klantrecord.
func (l ConfiguratorLead) ToCustomer() Customer {
	id := l.ID
	notes := strings.TrimSpace(fmt.Sprintf("Dienst: %s, kleur: %s", l.Service, l.Color))
	if l.GeneratedImageURL != "" {
		notes += "\nAI-voorbeeld: " + l.GeneratedImageURL
	}
	return Customer{
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		Address:     l.Address,
		LeadSource:  LeadSourceConfigurator,
		LeadID:      &id,
		ProjectType: l.Service,
		AdminNotes:  notes,
	}
}

// ToCustomer mapt campagne-velden naar een klantrecord.
func (l CampaignLead) ToCustomer() Customer {
	id := l.ID
	return Customer{
		Name:       l.Name,
		Email:      l.Email,
		Phone:      l.Phone,
		LeadSource: LeadSourceCampaign,
		LeadID:     &id,
		AdminNotes: strings.TrimSpace(fmt.Sprintf("Campagne: %s\n%s", l.Campaign, l.Message)),
	}
}

// ToCustomer mapt contactformulier-velden naar een klantrecord.
func (l ContactLead) ToCustomer() Customer {
	id := l.ID
	return Customer{
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		LeadSource:  LeadSourceContactForm,
		LeadID:      &id,
		ProjectType: l.ProjectType,
		AdminNotes:  l.Message,
		PhotoURLs:   l.PhotoURLs,
	}
}

// ToCustomer mapt keuzehulp-velden naar een klantrecord. De notitie verwijst
// naar de dienst-slug waarmee de wizard gestart is.
func (l KeuzehulpLead) ToCustomer() Customer {
	id := l.ID
	notes := strings.TrimSpace(l.AdminNotes)
	annotation := fmt.Sprintf("Via keuzehulp voor dienst: %s", l.ServiceSlug)
	if notes != "" {
		notes += "\n" + annotation
	} else {
		notes = annotation
	}
	return Customer{
		Name:       l.Name,
		Email:      l.Email,
		Phone:      l.Phone,
		Address:    l.Address,
		LeadSource: LeadSourceKeuzehulp,
		LeadID:     &id,
		AdminNotes: notes,
	}
}
