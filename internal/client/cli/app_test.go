package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inocencio/inoauto/internal/client/config"
	"github.com/inocencio/inoauto/internal/client/models"
	"github.com/inocencio/inoauto/internal/client/services"
	"github.com/inocencio/inoauto/internal/client/upload"
	"github.com/inocencio/inoauto/internal/common"
	"github.com/inocencio/inoauto/internal/logging"
)

type fakeAuth struct {
	session models.Session
	err     error

	loggedOut bool
}

func (f *fakeAuth) Login(ctx context.Context, email string, password []byte) (models.Session, error) {
	if f.err != nil {
		return models.Session{}, f.err
	}
	return f.session, nil
}

func (f *fakeAuth) Logout() models.Session {
	f.loggedOut = true
	return models.Session{}
}

func captureNotices(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func swapInput(t *testing.T, text string, password []byte) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return text, nil }
	getPassword = func(io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
}

func joined(lines *[]string) string { return strings.Join(*lines, "") }

func TestAppLogin(t *testing.T) {
	lines := captureNotices(t)
	swapInput(t, "ana@inoauto.com.br", []byte("segredo"))

	app := &App{
		auth:   &fakeAuth{session: models.Session{AccessToken: "tok", Name: "Ana"}},
		logger: logging.NewNop(),
	}

	require.NoError(t, app.Login(context.Background()))
	require.True(t, app.isLoggedIn())
	require.Equal(t, "(Ana)", app.status())
	require.Contains(t, joined(lines), "Login efetuado com sucesso")
}

func TestAppLoginUnavailable(t *testing.T) {
	lines := captureNotices(t)
	swapInput(t, "ana@inoauto.com.br", []byte("segredo"))

	app := &App{
		auth:   &fakeAuth{err: fmt.Errorf("dial: %w", common.ErrUnavailable)},
		logger: logging.NewNop(),
	}

	require.Error(t, app.Login(context.Background()))
	require.False(t, app.isLoggedIn())
	require.Contains(t, joined(lines), "Servidor indisponível")
}

func TestAppLoginWipesPassword(t *testing.T) {
	captureNotices(t)
	password := []byte("segredo")
	swapInput(t, "ana@inoauto.com.br", password)

	app := &App{auth: &fakeAuth{}, logger: logging.NewNop()}
	require.NoError(t, app.Login(context.Background()))

	require.Equal(t, make([]byte, len(password)), password)
}

func TestAppLogout(t *testing.T) {
	captureNotices(t)
	auth := &fakeAuth{}
	app := &App{
		auth:    auth,
		session: models.Session{AccessToken: "tok"},
		logger:  logging.NewNop(),
	}

	require.NoError(t, app.Logout(context.Background()))
	require.False(t, app.isLoggedIn())
	require.True(t, auth.loggedOut)
}

func TestNewAppRequiresPlacasToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	_, err := NewApp(cfg, logging.NewNop())
	require.Error(t, err)

	cfg.PlacasToken = "tok"
	app, err := NewApp(cfg, logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, app)
	require.NoError(t, app.client.Close())
}

func TestForceLogoutDropsSession(t *testing.T) {
	lines := captureNotices(t)
	auth := &fakeAuth{}
	app := &App{
		auth:    auth,
		session: models.Session{AccessToken: "tok"},
		logger:  logging.NewNop(),
	}

	app.forceLogout()

	require.False(t, app.isLoggedIn())
	require.True(t, auth.loggedOut)
	require.Contains(t, joined(lines), "Sessão expirada")
}

type fakeAutos struct {
	list []models.Automobile
	err  error
}

func (f *fakeAutos) List(ctx context.Context) ([]models.Automobile, error) { return f.list, f.err }
func (f *fakeAutos) NewRegistration(notify upload.Notifier) *services.Registration {
	return nil
}

func TestAppList(t *testing.T) {
	lines := captureNotices(t)
	app := &App{
		automobiles: &fakeAutos{list: []models.Automobile{{Plate: "ABC1D23", Brand: "FIAT", Photos: []string{"u"}}}},
		session:     models.Session{AccessToken: "tok"},
		logger:      logging.NewNop(),
	}

	require.NoError(t, app.List(context.Background()))
	require.Contains(t, joined(lines), "ABC1D23")
	require.Contains(t, joined(lines), "1 foto(s)")
}

func TestAppListUnauthorizedForcesLogout(t *testing.T) {
	lines := captureNotices(t)
	auth := &fakeAuth{}
	app := &App{
		auth:        auth,
		automobiles: &fakeAutos{err: fmt.Errorf("list: %w", common.ErrUnauthorized)},
		session:     models.Session{AccessToken: "tok"},
		logger:      logging.NewNop(),
	}

	require.Error(t, app.List(context.Background()))
	require.False(t, app.isLoggedIn())
	require.True(t, auth.loggedOut)
	require.Contains(t, joined(lines), "Sessão expirada")
}
