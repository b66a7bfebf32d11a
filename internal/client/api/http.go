package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/inocencio/inoauto/internal/client/models"
	"github.com/inocencio/inoauto/internal/common"
	"github.com/inocencio/inoauto/internal/logging"
)

// HTTPClient is the concrete JSON-over-HTTP implementation of Client.
// It is safe for concurrent use; the upload pipeline calls
// RequestUploadURL from several goroutines at once.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger

	mu      sync.RWMutex
	session models.Session
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = h }
}

func NewHTTPClient(baseURL string, logger logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) UseSession(s models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}

func (c *HTTPClient) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session.AccessToken
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return models.Session{}, err
	}
	return models.NewSession(resp.AccessToken)
}

func (c *HTTPClient) ListAutomobiles(ctx context.Context) ([]models.Automobile, error) {
	var list []models.Automobile
	if err := c.do(ctx, http.MethodGet, "/automobiles", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateAutomobile(ctx context.Context, form models.RegistrationForm) (*models.Automobile, error) {
	var created models.Automobile
	if err := c.do(ctx, http.MethodPost, "/automobiles", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type storageRequest struct {
	ContentType   string `json:"content-type"`
	ContentLength int    `json:"content-length"`
}

func (c *HTTPClient) RequestUploadURL(ctx context.Context, contentType string, contentLength int) (string, error) {
	// the response body is a JSON-encoded string holding the presigned URL
	var target string
	req := storageRequest{ContentType: contentType, ContentLength: contentLength}
	if err := c.do(ctx, http.MethodPost, "/storage", req, &target); err != nil {
		return "", err
	}
	return target, nil
}

// do performs one JSON round trip and maps failures to sentinel errors.
func (c *HTTPClient) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.accessToken(); token != "" {
		req.Header.Set(common.AccessTokenHeaderName, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type errorResponse struct {
	Message string `json:"message"`
}

// mapError turns a non-2xx reply into a typed error. The exact message
// "Não Autorizado" means the session is dead and maps to ErrUnauthorized.
func (c *HTTPClient) mapError(resp *http.Response) error {
	var er errorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(raw, &er); err != nil || er.Message == "" {
		return &Error{StatusCode: resp.StatusCode, Message: fmt.Sprintf("request failed: %s", resp.Status)}
	}

	if er.Message == common.UnauthorizedMessage {
		return common.ErrUnauthorized
	}
	return &Error{StatusCode: resp.StatusCode, Message: er.Message}
}
