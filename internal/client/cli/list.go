package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/inocencio/inoauto/internal/common"
)

// List prints a short textual representation of each registered automobile.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.notice("Faça login primeiro")
		return nil
	}

	autos, err := a.automobiles.List(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.forceLogout()
			return err
		}
		a.notice("Não foi possível listar os automóveis")
		a.logger.Warn(ctx, "list failed", "err", err)
		return err
	}

	if len(autos) == 0 {
		printlnFn("Nenhum automóvel cadastrado")
		return nil
	}

	for _, auto := range autos {
		printlnFn(fmt.Sprintf("%s  %s %s %s  %s/%s  %s-%s  %d foto(s)",
			auto.Plate, auto.Brand, auto.Model, auto.Variant,
			auto.ManufactureYear, auto.ModelYear, auto.City, auto.State,
			len(auto.Photos)))
	}
	return nil
}
