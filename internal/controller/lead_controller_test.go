package controller

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func lookupStatus(t *testing.T, handler func(*fiber.Ctx, error) error, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return handler(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, reqErr)
	return resp.StatusCode
}

// Alleen een ontbrekende rij is een 404; een databasefout mag zich niet als
// "not found" voordoen.
func TestLookupErrorsDistinguishMissingRowFromFailure(t *testing.T) {
	connErr := errors.New("connection refused")

	assert.Equal(t, fiber.StatusNotFound, lookupStatus(t, leadLookupError, gorm.ErrRecordNotFound))
	assert.Equal(t, fiber.StatusInternalServerError, lookupStatus(t, leadLookupError, connErr))

	assert.Equal(t, fiber.StatusNotFound, lookupStatus(t, customerLookupError, gorm.ErrRecordNotFound))
	assert.Equal(t, fiber.StatusInternalServerError, lookupStatus(t, customerLookupError, connErr))

	assert.Equal(t, fiber.StatusNotFound, lookupStatus(t, appointmentLookupError, gorm.ErrRecordNotFound))
	assert.Equal(t, fiber.StatusInternalServerError, lookupStatus(t, appointmentLookupError, connErr))

	assert.Equal(t, fiber.StatusNotFound, lookupStatus(t, reminderLookupError, gorm.ErrRecordNotFound))
	assert.Equal(t, fiber.StatusInternalServerError, lookupStatus(t, reminderLookupError, connErr))
}

func TestLookupErrorHandlesWrappedNotFound(t *testing.T) {
	wrapped := errors.Join(errors.New("query failed"), gorm.ErrRecordNotFound)
	assert.Equal(t, fiber.StatusNotFound, lookupStatus(t, leadLookupError, wrapped))
}
