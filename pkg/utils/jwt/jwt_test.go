package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken(7, "admin@wrapstudio.nl")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@wrapstudio.nl", claims.Email)
}

func TestGenerateRequiresSecret(t *testing.T) {
	Init("")

	_, err := GenerateToken(1, "admin@wrapstudio.nl")
	assert.ErrorIs(t, err, ErrNoSecret)
}

// Zonder geconfigureerde sleutel mag een token dat met de lege sleutel is
// ondertekend nooit geaccepteerd worden.
func TestValidateRejectsEmptyKeySignature(t *testing.T) {
	Init("")

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 1,
		Email:  "attacker@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte(""))
	require.NoError(t, err)

	claims, err := ValidateToken(signed)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	Init("test-secret")

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 1,
		Email:  "attacker@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte("andere-sleutel"))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}
