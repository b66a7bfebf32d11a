package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/inocencio/inoauto/internal/client/api"
	"github.com/inocencio/inoauto/internal/client/config"
	"github.com/inocencio/inoauto/internal/client/models"
	"github.com/inocencio/inoauto/internal/client/placas"
	"github.com/inocencio/inoauto/internal/client/services"
	"github.com/inocencio/inoauto/internal/logging"
)

// App holds the wired services and the interactive state of the CLI: the
// current session and the registration form in progress, if any. The form is
// created on "new" and dropped on cancel or successful submit.
type App struct {
	config      *config.Config
	client      api.Client
	auth        services.AuthService
	automobiles services.AutomobileService
	session     models.Session
	reader      *bufio.Reader
	logger      logging.Logger
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	if c.PlacasToken == "" {
		return nil, fmt.Errorf("plate lookup token is required (set -k or INOAUTO_PLACAS_TOKEN)")
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}

	apiClient := api.NewHTTPClient(c.APIBaseURL, logger, api.WithHTTPClient(httpClient))
	lookup := placas.New(c.PlacasToken, logger,
		placas.WithBaseURL(c.PlacasBaseURL),
		placas.WithHTTPClient(httpClient),
	)

	return &App{
		config:      c,
		client:      apiClient,
		auth:        services.NewAuthService(apiClient, logger),
		automobiles: services.NewAutomobileService(apiClient, lookup, httpClient, logger),
		reader:      bufio.NewReader(os.Stdin),
		logger:      logger,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	printlnFn("inoauto CLI (digite 'help' para os comandos)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	if a.session.Name != "" {
		return fmt.Sprintf("(%s)", a.session.Name)
	}
	return fmt.Sprintf("(%s)", a.session.Email)
}

// notice prints a user-facing message, the CLI equivalent of the web
// client's toast notifications.
func (a *App) notice(msg string) {
	printlnFn("! " + msg)
}

// forceLogout drops the session after the server rejected the token.
func (a *App) forceLogout() {
	a.session = a.auth.Logout()
	a.notice("Sessão expirada, faça login novamente")
}
