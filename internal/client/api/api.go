// Package api contains the client for the remote inoauto REST API.
//
// The package provides a transport-agnostic contract (Client) and a concrete
// HTTP implementation (HTTPClient) that injects the session's access token on
// every request and maps failures to sentinel errors. A server reply whose
// message is exactly "Não Autorizado" becomes common.ErrUnauthorized, which
// the application layer treats as a forced logout.
package api

import (
	"context"

	"github.com/inocencio/inoauto/internal/client/models"
)

// Client is the remote API contract the services depend on.
type Client interface {
	// Login exchanges credentials for a new authenticated session.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// ListAutomobiles fetches all automobile records.
	ListAutomobiles(ctx context.Context) ([]models.Automobile, error)

	// CreateAutomobile submits a validated registration payload and returns
	// the created record.
	CreateAutomobile(ctx context.Context, form models.RegistrationForm) (*models.Automobile, error)

	// RequestUploadURL asks the API for a pre-signed storage URL matching
	// the given content type and length.
	RequestUploadURL(ctx context.Context, contentType string, contentLength int) (string, error)

	// UseSession installs the session whose token authenticates subsequent
	// requests. Passing the zero Session clears authentication.
	UseSession(s models.Session)

	// Close releases transport resources.
	Close() error
}
