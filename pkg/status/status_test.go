package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularyForSource(t *testing.T) {
	assert.Equal(t, []string{"new", "in_progress", "completed", "archived"}, VocabularyForSource("configurator"))
	assert.Equal(t, []string{"new", "in_progress", "completed", "archived"}, VocabularyForSource("contact_form"))
	assert.Equal(t,
		[]string{"new", "contacted", "offer_sent", "accepted", "rejected", "archived"},
		VocabularyForSource("keuzehulp"))
}

func TestIsValidForSource(t *testing.T) {
	assert.True(t, IsValidForSource("campaign", "in_progress"))
	assert.False(t, IsValidForSource("campaign", "offer_sent"))
	assert.True(t, IsValidForSource("keuzehulp", "offer_sent"))
	assert.False(t, IsValidForSource("keuzehulp", "in_progress"))
}

func TestTerminalForSource(t *testing.T) {
	assert.Equal(t, "completed", TerminalForSource("contact_form"))
	assert.Equal(t, "completed", TerminalForSource("configurator"))
	assert.Equal(t, "accepted", TerminalForSource("keuzehulp"))
}

func TestLabelAndColor(t *testing.T) {
	assert.Equal(t, "Nieuw", Label(LeadNew))
	assert.Equal(t, "Voltooid", Label(AppointmentVoltooid))
	// Onbekende waarden komen ongewijzigd terug.
	assert.Equal(t, "iets_anders", Label("iets_anders"))

	assert.Equal(t, "green", ColorClass(LeadCompleted))
	assert.Equal(t, "gray", ColorClass("iets_anders"))
}

func TestReminderTransitions(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"gepland naar verzonden", ReminderGepland, ReminderVerzonden, true},
		{"gepland naar geannuleerd", ReminderGepland, ReminderGeannuleerd, true},
		{"verzonden terug naar gepland", ReminderVerzonden, ReminderGepland, false},
		{"verzonden naar geannuleerd", ReminderVerzonden, ReminderGeannuleerd, false},
		{"geannuleerd naar verzonden", ReminderGeannuleerd, ReminderVerzonden, false},
		{"onbekende status", "wat_dan_ook", ReminderVerzonden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionReminder(tt.from, tt.to))
		})
	}
}

func TestCanDeleteReminder(t *testing.T) {
	assert.True(t, CanDeleteReminder(ReminderGeannuleerd))
	assert.False(t, CanDeleteReminder(ReminderGepland))
	assert.False(t, CanDeleteReminder(ReminderVerzonden))
}
