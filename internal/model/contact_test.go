package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeContactsDeduplicatesByEmail(t *testing.T) {
	customers := []Contact{
		{ID: 1, Name: "Jan Jansen", Email: "Jan@Example.nl", Type: ContactTypeKlant},
	}
	configurator := []Contact{
		{ID: 10, Name: "Jan Jansen", Email: "jan@example.nl", Type: ContactTypeLead, Source: LeadSourceConfigurator},
		{ID: 11, Name: "Piet de Vries", Email: "piet@example.nl", Type: ContactTypeLead, Source: LeadSourceConfigurator},
	}
	contactForm := []Contact{
		{ID: 20, Name: "Piet de Vries", Email: "PIET@example.nl", Type: ContactTypeLead, Source: LeadSourceContactForm},
		{ID: 21, Name: "Kees Bakker", Email: "kees@example.nl", Type: ContactTypeLead, Source: LeadSourceContactForm},
	}

	merged := MergeContacts(customers, configurator, contactForm)
	require.Len(t, merged, 3)

	// Geen twee resultaten delen hetzelfde e-mailadres (kleine letters).
	seen := map[string]bool{}
	for _, c := range merged {
		key := c.Email
		assert.False(t, seen[key] && key != "", "dubbel e-mailadres %s", key)
		seen[key] = true
	}

	// Bij een gedeeld adres wint de klantweergave.
	assert.Equal(t, ContactTypeKlant, merged[0].Type)
	assert.Equal(t, uint(1), merged[0].ID)
}

func TestMergeContactsKeepsEmptyEmails(t *testing.T) {
	// Contacten zonder e-mailadres worden nooit tegen elkaar ontdubbeld.
	leads := []Contact{
		{ID: 1, Name: "Anoniem A", Type: ContactTypeLead},
		{ID: 2, Name: "Anoniem B", Type: ContactTypeLead},
	}
	assert.Len(t, MergeContacts(leads), 2)
}

func TestToContactProjections(t *testing.T) {
	cust := Customer{Name: "Jan", Email: "jan@example.nl", Phone: "0612345678"}
	cust.ID = 5
	c := cust.ToContact()
	assert.Equal(t, ContactTypeKlant, c.Type)
	assert.Empty(t, c.Source)

	lead := ContactLead{Name: "Piet", Email: "piet@example.nl"}
	lead.ID = 9
	l := lead.ToContact()
	assert.Equal(t, ContactTypeLead, l.Type)
	assert.Equal(t, LeadSourceContactForm, l.Source)
}
