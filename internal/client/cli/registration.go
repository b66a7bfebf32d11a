package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/inocencio/inoauto/internal/client/services"
	"github.com/inocencio/inoauto/internal/client/staging"
	"github.com/inocencio/inoauto/internal/common"
	"github.com/inocencio/inoauto/internal/filex"
)

// fieldNames is the form schema in display order, keyed by command argument.
var fieldNames = []string{
	"plate", "brand", "model", "variant", "manufactureYear", "modelYear",
	"chassis", "color", "fuel", "city", "state", "mileage", "price",
}

// NewAutomobile opens the interactive registration form. The form lives for
// the duration of the sub-loop and is discarded on cancel and after a
// successful submit; re-entering the command always starts blank.
func (a *App) NewAutomobile(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.notice("Faça login primeiro")
		return nil
	}

	reg := a.automobiles.NewRegistration(a.notice)
	printlnFn("Cadastro de automóvel (digite 'help' para os comandos)")
	return a.runForm(ctx, reg, a.reader)
}

// runForm is the registration sub-loop. It dispatches form commands until
// the user submits successfully, cancels, or input ends. A forced logout
// (dead session detected during submit) also leaves the form.
func (a *App) runForm(ctx context.Context, reg *services.Registration, reader *bufio.Reader) error {
	for {
		printlnFn("cadastro> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Comandos: show, plate <valor>, set <campo> <valor>,")
			printlnFn("  addphoto <arquivo>, adddoc <arquivo>, photos, docs,")
			printlnFn("  first <n>, left <n>, right <n>, delphoto <n>, deldoc <n>,")
			printlnFn("  submit, cancel")
			printlnFn("Campos: " + strings.Join(fieldNames, ", "))

		case "show":
			a.showForm(reg)

		case "plate":
			if len(args) == 0 {
				printlnFn("Uso: plate <valor>")
				continue
			}
			if err := reg.SetPlate(ctx, args[0]); err != nil {
				a.notice(err.Error())
			}

		case "set":
			if len(args) < 2 {
				printlnFn("Uso: set <campo> <valor>")
				continue
			}
			field, value := args[0], strings.Join(args[1:], " ")
			if field == "plate" {
				if err := reg.SetPlate(ctx, value); err != nil {
					a.notice(err.Error())
				}
				continue
			}
			if err := reg.SetField(field, value); err != nil {
				a.notice(err.Error())
			}

		case "addphoto":
			a.stageFile(reg, staging.KindPhoto, args)

		case "adddoc":
			a.stageFile(reg, staging.KindDocument, args)

		case "photos":
			a.showStaged(reg, staging.KindPhoto)

		case "docs":
			a.showStaged(reg, staging.KindDocument)

		case "first":
			a.reorder(args, func(i int) error { return reg.Staged().PromoteToPrimary(staging.KindPhoto, i) })

		case "left":
			a.reorder(args, func(i int) error { return reg.Staged().MoveLeft(staging.KindPhoto, i) })

		case "right":
			a.reorder(args, func(i int) error { return reg.Staged().MoveRight(staging.KindPhoto, i) })

		case "delphoto":
			a.reorder(args, func(i int) error { return reg.Staged().Delete(staging.KindPhoto, i) })

		case "deldoc":
			a.reorder(args, func(i int) error { return reg.Staged().Delete(staging.KindDocument, i) })

		case "submit":
			err := reg.Submit(ctx)
			if err == nil {
				return nil
			}
			if errors.Is(err, common.ErrUnauthorized) {
				a.forceLogout()
				return err
			}
			// notices were already emitted; stay on the form so the
			// user can fix the problem and retry

		case "cancel":
			printlnFn("Cadastro cancelado")
			return nil

		default:
			printlnFn("Comando desconhecido:", cmd)
		}
	}
}

// stageFile reads a local file and stages it as a photo or document.
func (a *App) stageFile(reg *services.Registration, kind staging.Kind, args []string) {
	if len(args) == 0 {
		printlnFn("Uso: addphoto|adddoc <arquivo>")
		return
	}

	f, err := filex.Read(strings.Join(args, " "))
	if err != nil {
		a.notice("Não foi possível ler o arquivo")
		return
	}

	add := reg.AddPhoto
	if kind == staging.KindDocument {
		add = reg.AddDocument
	}
	if err := add(f.Name, f.Content, f.ContentType); err != nil {
		a.notice(err.Error())
	}
}

// reorder parses the 1-based index argument and applies op with the 0-based
// index. Out-of-range errors surface as notices.
func (a *App) reorder(args []string, op func(index int) error) {
	if len(args) == 0 {
		printlnFn("Uso: <comando> <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		printlnFn("Índice inválido:", args[0])
		return
	}
	if err := op(n - 1); err != nil {
		a.notice(err.Error())
	}
}

func (a *App) showForm(reg *services.Registration) {
	f := reg.Form()
	values := map[string]string{
		"plate": f.Plate, "brand": f.Brand, "model": f.Model,
		"variant": f.Variant, "manufactureYear": f.ManufactureYear,
		"modelYear": f.ModelYear, "chassis": f.Chassis, "color": f.Color,
		"fuel": f.Fuel, "city": f.City, "state": f.State,
		"mileage": f.Mileage, "price": f.Price,
	}
	for _, name := range fieldNames {
		printlnFn(fmt.Sprintf("  %-16s %s", name, values[name]))
	}
	printlnFn(fmt.Sprintf("  %-16s %d", "fotos", reg.Staged().Len(staging.KindPhoto)))
	printlnFn(fmt.Sprintf("  %-16s %d", "documentos", reg.Staged().Len(staging.KindDocument)))
}

func (a *App) showStaged(reg *services.Registration, kind staging.Kind) {
	items := reg.Staged().Items(kind)
	if len(items) == 0 {
		printlnFn("Nenhum arquivo")
		return
	}
	for i, item := range items {
		glyph := " "
		switch item.Status {
		case staging.StatusUploading:
			glyph = "~"
		case staging.StatusUploaded:
			glyph = "*"
		}
		printlnFn(fmt.Sprintf("  %d %s %s", i+1, glyph, item.Name))
	}
}
