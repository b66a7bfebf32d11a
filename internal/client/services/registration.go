package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/inocencio/inoauto/internal/client/api"
	"github.com/inocencio/inoauto/internal/client/forms"
	"github.com/inocencio/inoauto/internal/client/models"
	"github.com/inocencio/inoauto/internal/client/normalize"
	"github.com/inocencio/inoauto/internal/client/placas"
	"github.com/inocencio/inoauto/internal/client/staging"
	"github.com/inocencio/inoauto/internal/client/upload"
	"github.com/inocencio/inoauto/internal/common"
	"github.com/inocencio/inoauto/internal/logging"
)

// ErrFormBusy is returned when input arrives while a lookup or submission is
// in flight; the form is effectively disabled until the operation finishes.
var ErrFormBusy = errors.New("formulário ocupado, aguarde")

// ErrUnknownField is returned for a field name outside the form schema.
var ErrUnknownField = errors.New("campo desconhecido")

// Registration owns one editing session of the new-automobile form: the
// scalar fields, the staged photo/document lists and the loading flag. It is
// created fresh on every visit to the registration flow and dropped on
// cancel or successful submit; nothing else retains references to it.
type Registration struct {
	client   api.Client
	lookup   placas.Lookup
	pipeline *upload.Pipeline
	notify   upload.Notifier
	logger   logging.Logger

	form    models.RegistrationForm
	staged  *staging.Manager
	loading bool
}

func newRegistration(client api.Client, lookup placas.Lookup, httpClient *http.Client, notify upload.Notifier, logger logging.Logger) *Registration {
	if notify == nil {
		notify = func(string) {}
	}
	return &Registration{
		client:   client,
		lookup:   lookup,
		pipeline: upload.NewPipeline(client, httpClient, notify, logger),
		notify:   notify,
		logger:   logger,
		staged:   staging.NewManager(),
	}
}

// Form returns a snapshot of the current scalar state.
func (r *Registration) Form() models.RegistrationForm { return r.form }

// Staged exposes the staged-file manager for listing and reordering.
func (r *Registration) Staged() *staging.Manager { return r.staged }

// Loading reports whether a lookup or submit is in flight.
func (r *Registration) Loading() bool { return r.loading }

// SetPlate normalizes and stores the plate. Once the normalized value forms
// a complete plate, the external lookup fires and auto-fills the vehicle
// fields; partial input never triggers it.
func (r *Registration) SetPlate(ctx context.Context, raw string) error {
	if r.loading {
		return ErrFormBusy
	}

	plate := normalize.Plate(raw)
	r.form.Plate = plate

	if !normalize.CompletePlate.MatchString(plate) {
		return nil
	}

	r.loading = true
	defer func() { r.loading = false }()

	vehicle, err := r.lookup.Find(ctx, plate)
	if err != nil {
		var nf *placas.NotFoundError
		if errors.As(err, &nf) {
			r.notify(nf.Message)
			return nil
		}
		r.notify("Não foi possível buscar dados do automóvel")
		r.logger.Warn(ctx, "plate lookup error", "plate", plate, "err", err)
		return nil
	}

	r.notify("Placa encontrada")
	r.applyLookup(vehicle)
	return nil
}

// applyLookup pipes every external value through the matching normalizer;
// raw lookup strings are never assigned to form state directly.
func (r *Registration) applyLookup(v *placas.Vehicle) {
	r.form.Brand = normalize.Upper50(v.Brand)
	r.form.Model = normalize.Upper50(v.Model)
	r.form.Variant = normalize.Upper50(v.Variant)
	r.form.ManufactureYear = normalize.Year(v.ManufactureYear)
	r.form.ModelYear = normalize.Year(v.ModelYear)
	r.form.Color = normalize.Upper50(v.Color)
	r.form.City = normalize.Upper50(v.City)
	r.form.State = normalize.State(v.State)

	if v.Chassis != "" {
		r.form.Chassis = normalize.Chassis(v.Chassis)
	}
	if v.Fuel != "" {
		r.form.Fuel = normalize.Upper50(v.Fuel)
	}
}

// SetField normalizes and stores one scalar field by its schema name.
// The plate has its own entry point because it can trigger the lookup.
func (r *Registration) SetField(name, raw string) error {
	if r.loading {
		return ErrFormBusy
	}

	switch name {
	case "brand":
		r.form.Brand = normalize.Upper50(raw)
	case "model":
		r.form.Model = normalize.Upper50(raw)
	case "variant":
		r.form.Variant = normalize.Upper50(raw)
	case "manufactureYear":
		r.form.ManufactureYear = normalize.Year(raw)
	case "modelYear":
		r.form.ModelYear = normalize.Year(raw)
	case "chassis":
		r.form.Chassis = normalize.Chassis(raw)
	case "color":
		r.form.Color = normalize.Upper50(raw)
	case "fuel":
		r.form.Fuel = normalize.Upper50(raw)
	case "city":
		r.form.City = normalize.Upper50(raw)
	case "state":
		r.form.State = normalize.State(raw)
	case "mileage":
		r.form.Mileage = normalize.Mileage(raw)
	case "price":
		r.form.Price = normalize.Price(raw)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// AddPhoto stages a photo; rejections come back as *staging.RejectionError
// with the user-facing message.
func (r *Registration) AddPhoto(name string, content []byte, contentType string) error {
	if r.loading {
		return ErrFormBusy
	}
	_, err := r.staged.Stage(staging.KindPhoto, name, content, contentType)
	return err
}

// AddDocument stages a document.
func (r *Registration) AddDocument(name string, content []byte, contentType string) error {
	if r.loading {
		return ErrFormBusy
	}
	_, err := r.staged.Stage(staging.KindDocument, name, content, contentType)
	return err
}

// Submit runs the two-phase submission: upload every staged file, then
// validate and POST the payload.
//
// If any upload fails the submission aborts before the POST; files that made
// it keep their uploaded state, so the next Submit resends only the rest.
// A validation violation surfaces its message and aborts with no network
// call. The in-flight flag is cleared on every terminal path.
func (r *Registration) Submit(ctx context.Context) error {
	if r.loading {
		return ErrFormBusy
	}
	r.loading = true
	defer func() { r.loading = false }()

	photos, documents, err := r.pipeline.Run(ctx, r.staged)
	if err != nil {
		// per-file notices were already emitted by the pipeline
		return err
	}
	r.form.Photos = photos
	r.form.Documents = documents

	if verr := forms.ValidateRegistration(r.form); verr != nil {
		r.notify(verr.Message)
		return verr
	}

	if _, err := r.client.CreateAutomobile(ctx, r.form); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return err
		}
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			r.notify(apiErr.Message)
		} else {
			r.notify("Não foi possível cadastrar o automóvel")
		}
		return err
	}

	r.notify("Automóvel cadastrado com sucesso")
	return nil
}
