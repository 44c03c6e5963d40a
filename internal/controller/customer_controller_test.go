package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerUpdatesSkipsEmptyFields(t *testing.T) {
	input := &CustomerInput{
		Name:  "Jan Jansen",
		Phone: "0612345678",
	}

	updates := customerUpdates(input)

	assert.Equal(t, map[string]interface{}{
		"name":  "Jan Jansen",
		"phone": "0612345678",
	}, updates)

	// Lege velden mogen bestaande waarden niet wissen.
	assert.NotContains(t, updates, "email")
	assert.NotContains(t, updates, "address")
	assert.NotContains(t, updates, "project_type")
	assert.NotContains(t, updates, "admin_notes")
}

func TestCustomerUpdatesEmptyInput(t *testing.T) {
	assert.Empty(t, customerUpdates(&CustomerInput{}))
}

func TestCustomerUpdatesAllFields(t *testing.T) {
	input := &CustomerInput{
		Name:        "Jan Jansen",
		Email:       "jan@example.nl",
		Phone:       "0612345678",
		Address:     "Dorpsstraat 1",
		ProjectType: "keuken",
		AdminNotes:  "belde terug",
	}

	updates := customerUpdates(input)
	assert.Len(t, updates, 6)
	assert.Equal(t, "jan@example.nl", updates["email"])
	assert.Equal(t, "keuken", updates["project_type"])
}
