package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func leadAt(id uint, created time.Time) gorm.Model {
	return gorm.Model{ID: id, CreatedAt: created}
}

func TestAggregateLeadsSortsDescending(t *testing.T) {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	configurator := []ConfiguratorLead{
		{Model: leadAt(1, base.Add(2 * time.Hour)), Status: "new", Service: "keukenwrap"},
	}
	campaign := []CampaignLead{
		{Model: leadAt(2, base.Add(5 * time.Hour)), Status: "in_progress"},
	}
	contact := []ContactLead{
		{Model: leadAt(3, base), Status: "new"},
	}
	keuzehulp := []KeuzehulpLead{
		{Model: leadAt(4, base.Add(3 * time.Hour)), Status: "contacted"},
	}

	leads := AggregateLeads(configurator, campaign, contact, keuzehulp)
	require.Len(t, leads, 4)

	// created_at is nergens stijgend in de reeks
	for i := 1; i < len(leads); i++ {
		assert.False(t, leads[i].CreatedAt.After(leads[i-1].CreatedAt),
			"lead %d is nieuwer dan zijn voorganger", i)
	}

	assert.Equal(t, uint(2), leads[0].ID)
	assert.Equal(t, LeadSourceCampaign, leads[0].Source)
	assert.Equal(t, uint(3), leads[3].ID)
}

func TestSummaryCarriesSourceTag(t *testing.T) {
	s := KeuzehulpLead{Model: gorm.Model{ID: 7}, ServiceSlug: "keuken-wrappen", Status: "new"}.Summary()
	assert.Equal(t, LeadSourceKeuzehulp, s.Source)
	assert.Equal(t, "keuken-wrappen", s.Detail)
}

func TestFilterLeads(t *testing.T) {
	leads := []LeadSummary{
		{ID: 1, Source: LeadSourceKeuzehulp, Status: "contacted"},
		{ID: 2, Source: LeadSourceKeuzehulp, Status: "new"},
		{ID: 3, Source: LeadSourceContactForm, Status: "contacted"},
		{ID: 4, Source: LeadSourceContactForm, Status: "new"},
	}

	t.Run("beide filters tegelijk", func(t *testing.T) {
		got := FilterLeads(leads, LeadSourceKeuzehulp, "contacted")
		require.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].ID)
	})

	t.Run("volgorde van toepassen maakt niet uit", func(t *testing.T) {
		a := FilterLeads(FilterLeads(leads, LeadSourceKeuzehulp, ""), "", "contacted")
		b := FilterLeads(FilterLeads(leads, "", "contacted"), LeadSourceKeuzehulp, "")
		assert.Equal(t, a, b)
	})

	t.Run("lege filters geven alles terug", func(t *testing.T) {
		assert.Len(t, FilterLeads(leads, "", ""), 4)
	})
}
