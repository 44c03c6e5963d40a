package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestContactLeadToCustomer(t *testing.T) {
	lead := ContactLead{
		Model:       gorm.Model{ID: 42},
		Name:        "Jan Jansen",
		Email:       "jan@example.nl",
		Phone:       "0612345678",
		ProjectType: "keuken",
		Message:     "test",
	}

	customer := lead.ToCustomer()

	assert.Equal(t, "Jan Jansen", customer.Name)
	assert.Equal(t, "jan@example.nl", customer.Email)
	assert.Equal(t, "0612345678", customer.Phone)
	assert.Equal(t, "keuken", customer.ProjectType)
	assert.Equal(t, LeadSourceContactForm, customer.LeadSource)
	require.NotNil(t, customer.LeadID)
	assert.Equal(t, uint(42), *customer.LeadID)
	assert.Equal(t, "test", customer.AdminNotes)
}

func TestConfiguratorLeadToCustomer(t *testing.T) {
	lead := ConfiguratorLead{
		Model:             gorm.Model{ID: 7},
		Name:              "Piet de Vries",
		Email:             "piet@example.nl",
		Address:           "Dorpsstraat 1",
		Service:           "keukenwrap",
		Color:             "mat zwart",
		GeneratedImageURL: "https://cdn.example.nl/gen/7.webp",
	}

	customer := lead.ToCustomer()

	assert.Equal(t, LeadSourceConfigurator, customer.LeadSource)
	assert.Equal(t, "Dorpsstraat 1", customer.Address)
	assert.Equal(t, "keukenwrap", customer.ProjectType)
	assert.Contains(t, customer.AdminNotes, "mat zwart")
	assert.Contains(t, customer.AdminNotes, "https://cdn.example.nl/gen/7.webp")
}

func TestKeuzehulpLeadToCustomerAnnotation(t *testing.T) {
	lead := KeuzehulpLead{
		Model:       gorm.Model{ID: 3},
		Name:        "Kees Bakker",
		Email:       "kees@example.nl",
		Address:     "Kerkweg 12",
		ServiceSlug: "interieur-wrappen",
		AdminNotes:  "Belde eerder over badkamer",
	}

	customer := lead.ToCustomer()

	assert.Equal(t, LeadSourceKeuzehulp, customer.LeadSource)
	assert.Equal(t, "Kerkweg 12", customer.Address)
	// Bestaande notities blijven staan; de slug-verwijzing komt erachter.
	assert.Contains(t, customer.AdminNotes, "Belde eerder over badkamer")
	assert.Contains(t, customer.AdminNotes, "interieur-wrappen")
}

func TestCampaignLeadToCustomer(t *testing.T) {
	lead := CampaignLead{
		Model:    gorm.Model{ID: 8},
		Name:     "Anna Smit",
		Email:    "anna@example.nl",
		Phone:    "0687654321",
		Campaign: "voorjaar-2025",
		Message:  "Graag offerte",
	}

	customer := lead.ToCustomer()

	assert.Equal(t, LeadSourceCampaign, customer.LeadSource)
	assert.Contains(t, customer.AdminNotes, "voorjaar-2025")
	assert.Contains(t, customer.AdminNotes, "Graag offerte")
}
