package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/inocencio/inoauto/internal/common"
)

func makeToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestNewSession_DecodesClaims(t *testing.T) {
	token := makeToken(t, jwt.MapClaims{
		"email": "admin@inocencio.app.br",
		"name":  "Admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	s, err := NewSession(token)
	require.NoError(t, err)
	require.True(t, s.Authenticated())
	require.Equal(t, "admin@inocencio.app.br", s.Email)
	require.Equal(t, "Admin", s.Name)
	require.Equal(t, token, s.AccessToken)
}

func TestNewSession_EmptyToken(t *testing.T) {
	_, err := NewSession("")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestNewSession_Garbage(t *testing.T) {
	_, err := NewSession("not-a-jwt")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestSession_ZeroValueIsLoggedOut(t *testing.T) {
	var s Session
	require.False(t, s.Authenticated())
}
