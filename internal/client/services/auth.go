// Package services contains the application services of the inoauto CLI:
// authentication and the automobile listing/registration workflows.
package services

import (
	"context"

	"github.com/inocencio/inoauto/internal/client/api"
	"github.com/inocencio/inoauto/internal/client/forms"
	"github.com/inocencio/inoauto/internal/client/models"
	"github.com/inocencio/inoauto/internal/logging"
)

// AuthService logs the operator in and out. Login returns a new immutable
// Session and installs it on the API client; Logout installs the zero
// Session. There is no shared mutable auth store.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (models.Session, error)
	Logout() models.Session
}

type authService struct {
	client api.Client
	logger logging.Logger
}

func NewAuthService(client api.Client, logger logging.Logger) AuthService {
	return &authService{client: client, logger: logger}
}

// Login validates the credentials locally, then exchanges them for a session.
// Validation failures never reach the network; the returned error carries the
// user-facing message.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.Session, error) {
	if verr := forms.ValidateCredentials(email, string(password)); verr != nil {
		return models.Session{}, verr
	}

	session, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return models.Session{}, err
	}

	a.client.UseSession(session)
	a.logger.Info(ctx, "logged in", "email", session.Email)
	return session, nil
}

func (a *authService) Logout() models.Session {
	a.client.UseSession(models.Session{})
	return models.Session{}
}
