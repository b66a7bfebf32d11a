// Package forms validates the full registration payload and the login
// credentials before any network call. Field-level normalization is a
// separate concern (see normalize); the schema here is the last gate in
// front of the remote API.
package forms

import (
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/inocencio/inoauto/internal/client/models"
	"github.com/inocencio/inoauto/internal/client/normalize"
)

const (
	minYear = 1950
	maxYear = 2026
)

var chassisAlphabet = regexp.MustCompile(`^[A-Z0-9]+$`)

// ufs is the set of valid Brazilian state codes.
var ufs = map[string]struct{}{
	"RO": {}, "AC": {}, "AM": {}, "RR": {}, "PA": {}, "AP": {}, "TO": {},
	"MA": {}, "PI": {}, "CE": {}, "RN": {}, "PB": {}, "PE": {}, "AL": {},
	"SE": {}, "BA": {}, "MG": {}, "ES": {}, "RJ": {}, "SP": {}, "PR": {},
	"SC": {}, "RS": {}, "MS": {}, "MT": {}, "GO": {}, "DF": {},
}

// Error is a single schema violation. Message is user-facing (pt-BR).
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

type fieldRules struct {
	name  string
	value any
	rules []validation.Rule
}

func yearRange(message string) validation.Rule {
	return validation.By(func(v any) error {
		s, _ := v.(string)
		if s == "" {
			return nil // Required reports emptiness
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < minYear || n > maxYear {
			return &Error{Message: message}
		}
		return nil
	})
}

func validUF(message string) validation.Rule {
	return validation.By(func(v any) error {
		s, _ := v.(string)
		if s == "" {
			return nil
		}
		if _, ok := ufs[s]; !ok {
			return &Error{Message: message}
		}
		return nil
	})
}

// ValidateRegistration checks the assembled payload against the full schema
// and returns the first violation in field declaration order, or nil.
func ValidateRegistration(f models.RegistrationForm) *Error {
	fields := []fieldRules{
		{"plate", strings.TrimSpace(f.Plate), []validation.Rule{
			validation.Required.Error("Placa é um campo obrigatório"),
			validation.Match(normalize.CompletePlate).Error("Placa inválida"),
		}},
		{"brand", strings.TrimSpace(f.Brand), []validation.Rule{
			validation.Required.Error("Marca é um campo obrigatório"),
			validation.RuneLength(0, 50).Error("Marca deve ter até 50 caracteres"),
		}},
		{"model", strings.TrimSpace(f.Model), []validation.Rule{
			validation.Required.Error("Modelo é um campo obrigatório"),
			validation.RuneLength(0, 50).Error("Modelo deve ter até 50 caracteres"),
		}},
		{"variant", strings.TrimSpace(f.Variant), []validation.Rule{
			validation.Required.Error("Versão é um campo obrigatório"),
			validation.RuneLength(0, 50).Error("Versão deve ter até 50 caracteres"),
		}},
		{"manufactureYear", strings.TrimSpace(f.ManufactureYear), []validation.Rule{
			validation.Required.Error("Ano de Fabricação é um campo obrigatório"),
			yearRange("Ano de Fabricação deve ser um ano válido (1950-2026)"),
		}},
		{"modelYear", strings.TrimSpace(f.ModelYear), []validation.Rule{
			validation.Required.Error("Ano do Modelo é um campo obrigatório"),
			yearRange("Ano do Modelo deve ser um ano válido (1950-2026)"),
		}},
		{"chassis", strings.TrimSpace(f.Chassis), []validation.Rule{
			validation.Required.Error("Chassi é um campo obrigatório"),
			validation.RuneLength(0, 50).Error("Chassi deve ter até 50 caracteres"),
			validation.Match(chassisAlphabet).Error("Chassi deve conter apenas letras e números"),
		}},
		{"color", strings.TrimSpace(f.Color), []validation.Rule{
			validation.Required.Error("Cor é um campo obrigatório"),
			validation.RuneLength(0, 50).Error("Cor deve ter até 50 caracteres"),
		}},
		{"fuel", strings.TrimSpace(f.Fuel), []validation.Rule{
			validation.Required.Error("Combustível é um campo obrigatório"),
			validation.RuneLength(0, 50).Error("Combustível deve ter até 50 caracteres"),
		}},
		{"city", strings.TrimSpace(f.City), []validation.Rule{
			validation.Required.Error("Cidade é um campo obrigatório"),
			validation.RuneLength(0, 50).Error("Cidade deve ter até 50 caracteres"),
		}},
		{"state", strings.TrimSpace(f.State), []validation.Rule{
			validation.Required.Error("Estado é um campo obrigatório"),
			validUF("Estado inválido"),
		}},
		{"mileage", f.Mileage, []validation.Rule{
			validation.Required.Error("Quilometragem é um campo obrigatório"),
		}},
		{"price", f.Price, []validation.Rule{
			validation.Required.Error("Preço é um campo obrigatório"),
		}},
		{"photos", f.Photos, []validation.Rule{
			validation.Each(is.URL.Error("Foto com URL inválida")),
		}},
		{"documents", f.Documents, []validation.Rule{
			validation.Each(is.URL.Error("Documento com URL inválida")),
		}},
	}

	return firstViolation(fields)
}

// ValidateCredentials checks the login form.
func ValidateCredentials(email, password string) *Error {
	fields := []fieldRules{
		{"email", strings.TrimSpace(email), []validation.Rule{
			validation.Required.Error("Por favor informe seu email"),
			validation.RuneLength(0, 255).Error("Email muito longo"),
			is.EmailFormat.Error("Email inválido"),
		}},
		{"password", password, []validation.Rule{
			validation.Required.Error("Por favor informe sua senha"),
			validation.RuneLength(0, 64).Error("Senha muito longa"),
		}},
	}

	return firstViolation(fields)
}

func firstViolation(fields []fieldRules) *Error {
	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return &Error{Field: f.name, Message: violationMessage(err)}
		}
	}
	return nil
}

func violationMessage(err error) string {
	if fe, ok := err.(*Error); ok {
		return fe.Message
	}
	// Each wraps per-index errors in validation.Errors; surface the first.
	if errs, ok := err.(validation.Errors); ok {
		for _, e := range errs {
			return violationMessage(e)
		}
	}
	return err.Error()
}
