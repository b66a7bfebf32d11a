// Package placas talks to the third-party plate lookup service
// (wdapi2.com.br) and maps its two response shapes to either vehicle
// attributes or a typed "not found" error.
package placas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/inocencio/inoauto/internal/logging"
)

// DefaultBaseURL is the production lookup endpoint.
const DefaultBaseURL = "https://wdapi2.com.br"

// successMarker is the literal value the service puts in mensagemRetorno on
// the success shape. Anything else without a status code is malformed.
const successMarker = "Sem erros."

// ErrLookupFailed covers transport problems and malformed bodies: the caller
// shows a generic notice and leaves the form untouched.
var ErrLookupFailed = errors.New("plate lookup failed")

// Vehicle carries the attributes of a found plate. Values are raw external
// strings; callers must pipe each one through the field normalizers before
// storing it in form state. Chassis and Fuel are optional and may be empty.
type Vehicle struct {
	Brand           string
	Model           string
	Variant         string
	ManufactureYear string
	ModelYear       string
	Color           string
	City            string
	State           string
	Chassis         string
	Fuel            string
}

// NotFoundError is the service's structured failure shape. Its message is
// user-facing and surfaced as a non-fatal notice.
type NotFoundError struct {
	Status  int
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Lookup is the interface the registration workflow depends on.
type Lookup interface {
	Find(ctx context.Context, plate string) (*Vehicle, error)
}

// Client is the HTTP implementation of Lookup.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     logging.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New builds a lookup client. The token is the required access credential
// embedded in every request path.
func New(token string, logger logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// wireResponse is the union of the success and failure shapes. MODELO maps
// to the form's variant and SUBMODELO to its model; that mirror-flip is how
// the upstream service names things.
type wireResponse struct {
	Marca     string `json:"MARCA"`
	Modelo    string `json:"MODELO"`
	Submodelo string `json:"SUBMODELO"`
	Ano       string `json:"ano"`
	AnoModelo string `json:"anoModelo"`
	Cor       string `json:"cor"`
	Municipio string `json:"municipio"`
	UF        string `json:"uf"`
	Mensagem  string `json:"mensagemRetorno"`
	Status    *int   `json:"status"`
	Extra     struct {
		Chassi      string `json:"chassi"`
		Combustivel string `json:"combustivel"`
	} `json:"extra"`
}

// Find queries the service for a complete, normalized plate.
//
// Outcomes:
//   - success shape: a Vehicle with raw external values;
//   - failure shape: a *NotFoundError carrying the service message;
//   - anything else (non-2xx, network error, malformed body): an error
//     wrapping ErrLookupFailed.
func (c *Client) Find(ctx context.Context, plate string) (*Vehicle, error) {
	url := fmt.Sprintf("%s/consulta/%s/%s", c.baseURL, plate, c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "plate lookup request failed", "plate", plate, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn(ctx, "plate lookup bad status", "plate", plate, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %s", ErrLookupFailed, resp.Status)
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	if wire.Status != nil {
		return nil, &NotFoundError{Status: *wire.Status, Message: wire.Mensagem}
	}

	if wire.Mensagem != successMarker {
		return nil, fmt.Errorf("%w: unexpected response shape", ErrLookupFailed)
	}

	return &Vehicle{
		Brand:           wire.Marca,
		Model:           wire.Submodelo,
		Variant:         wire.Modelo,
		ManufactureYear: wire.Ano,
		ModelYear:       wire.AnoModelo,
		Color:           wire.Cor,
		City:            wire.Municipio,
		State:           wire.UF,
		Chassis:         wire.Extra.Chassi,
		Fuel:            wire.Extra.Combustivel,
	}, nil
}
