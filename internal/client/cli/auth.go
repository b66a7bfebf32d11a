package cli

import (
	"context"
	"errors"
	"os"

	"github.com/inocencio/inoauto/internal/client/api"
	"github.com/inocencio/inoauto/internal/client/forms"
	"github.com/inocencio/inoauto/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// Validation failures and server rejections surface as notices; transport
// failures are reported as server unavailability. The password byte slice
// is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Informe seu email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.auth.Login(ctx, email, password)
	if err != nil {
		var verr *forms.Error
		var apiErr *api.Error
		switch {
		case errors.As(err, &verr):
			a.notice(verr.Message)
		case errors.Is(err, common.ErrUnavailable):
			a.notice("Servidor indisponível, tente novamente mais tarde")
		case errors.As(err, &apiErr):
			a.notice(apiErr.Message)
		default:
			a.notice("Não foi possível fazer login")
			a.logger.Warn(ctx, "login failed", "err", err)
		}
		return err
	}

	a.session = session
	a.notice("Login efetuado com sucesso")
	return nil
}

// Logout clears the session on the API client and in the REPL state.
func (a *App) Logout(ctx context.Context) error {
	a.session = a.auth.Logout()
	a.notice("Sessão encerrada")
	return nil
}
