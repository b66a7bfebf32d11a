package services

import (
	"context"
	"net/http"

	"github.com/inocencio/inoauto/internal/client/api"
	"github.com/inocencio/inoauto/internal/client/models"
	"github.com/inocencio/inoauto/internal/client/placas"
	"github.com/inocencio/inoauto/internal/client/upload"
	"github.com/inocencio/inoauto/internal/logging"
)

// AutomobileService reads the listing and spawns registration sessions.
type AutomobileService interface {
	List(ctx context.Context) ([]models.Automobile, error)

	// NewRegistration opens a fresh registration form. Each call returns an
	// independent workflow owning its own form state and staged files; it is
	// discarded on cancel and after a successful submit.
	NewRegistration(notify upload.Notifier) *Registration
}

type automobileService struct {
	client     api.Client
	lookup     placas.Lookup
	httpClient *http.Client
	logger     logging.Logger
}

func NewAutomobileService(client api.Client, lookup placas.Lookup, httpClient *http.Client, logger logging.Logger) AutomobileService {
	return &automobileService{client: client, lookup: lookup, httpClient: httpClient, logger: logger}
}

func (s *automobileService) List(ctx context.Context) ([]models.Automobile, error) {
	return s.client.ListAutomobiles(ctx)
}

func (s *automobileService) NewRegistration(notify upload.Notifier) *Registration {
	return newRegistration(s.client, s.lookup, s.httpClient, notify, s.logger)
}
