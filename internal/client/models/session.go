package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inocencio/inoauto/internal/common"
)

// Session is an immutable authentication value. Login produces a new Session,
// logout replaces it with the zero value. The API client receives the current
// Session explicitly instead of reading a shared mutable store.
type Session struct {
	AccessToken string
	Email       string
	Name        string
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// NewSession decodes the access token's claims (email, name) for display
// purposes. The token is not verified locally; the server is the authority,
// the client only needs the embedded identity.
func NewSession(accessToken string) (Session, error) {
	if accessToken == "" {
		return Session{}, common.ErrInvalidToken
	}

	var claims sessionClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return Session{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	return Session{AccessToken: accessToken, Email: claims.Email, Name: claims.Name}, nil
}
