// Package catalog is the HTTP client of the public country catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/countrybook/internal/models"
	"github.com/iudanet/countrybook/pkg/api"
)

const (
	// DefaultBaseURL публичный REST Countries v3.1
	DefaultBaseURL = "https://restcountries.com/v3.1"
	// DefaultTimeout таймаут одного запроса
	DefaultTimeout = 15 * time.Second
)

// Catalog is the read side of the country catalog.
//
//go:generate moq -out catalog_mock.go . Catalog
type Catalog interface {
	FetchAll(ctx context.Context) ([]models.Country, error)
	FetchByName(ctx context.Context, name string) ([]models.Country, error)
	FetchByRegion(ctx context.Context, region string) ([]models.Country, error)
	FetchByCode(ctx context.Context, code string) ([]models.Country, error)
	FetchByLanguage(ctx context.Context, language string) ([]models.Country, error)
}

// Client представляет HTTP клиент каталога стран
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger logs every request through a LoggingTransport.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.httpClient.Transport = NewLoggingTransport(c.httpClient.Transport, logger)
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient создает новый клиент каталога
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the catalog root URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchAll возвращает все страны
func (c *Client) FetchAll(ctx context.Context) ([]models.Country, error) {
	return c.fetch(ctx, "/all")
}

// FetchByName ищет страны по имени (совпадения по common, official и альтернативным именам)
func (c *Client) FetchByName(ctx context.Context, name string) ([]models.Country, error) {
	return c.fetch(ctx, "/name/"+url.PathEscape(name))
}

// FetchByRegion возвращает страны региона
func (c *Client) FetchByRegion(ctx context.Context, region string) ([]models.Country, error) {
	return c.fetch(ctx, "/region/"+url.PathEscape(region))
}

// FetchByCode возвращает страну по коду cca3 (сервер отдает список)
func (c *Client) FetchByCode(ctx context.Context, code string) ([]models.Country, error) {
	return c.fetch(ctx, "/alpha/"+url.PathEscape(code))
}

// FetchByLanguage возвращает страны, где говорят на языке
func (c *Client) FetchByLanguage(ctx context.Context, language string) ([]models.Country, error) {
	return c.fetch(ctx, "/lang/"+url.PathEscape(language))
}

func (c *Client) fetch(ctx context.Context, path string) ([]models.Country, error) {
	var wire []api.Country
	if err := c.doRequest(ctx, http.MethodGet, path, &wire); err != nil {
		return nil, err
	}
	return FromWire(wire), nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
