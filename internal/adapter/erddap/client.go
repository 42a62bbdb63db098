// Package erddap fetches live sea-surface temperature from a NOAA ERDDAP
// griddap dataset.
package erddap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/domain"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/observability"
)

// ErrMalformedPayload marks a well-delivered response whose body does not
// carry a usable temperature value. The payload is untrusted; every shape
// violation maps here instead of panicking on a missing index.
var ErrMalformedPayload = errors.New("malformed erddap payload")

// Client fetches sea-surface temperature for a coordinate from an ERDDAP
// griddap endpoint. Repeated failures open a circuit breaker so downstream
// fallback is immediate instead of waiting out the timeout every time.
type Client struct {
	httpClient *http.Client
	baseURL    string
	circuit    *gobreaker.CircuitBreaker
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an ERDDAP client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "erddap-sst",
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		circuit: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// FetchSST returns the sea-surface temperature in °C, rounded to one
// decimal, for the last-available grid cell nearest the coordinate.
// A single attempt per call; no retries.
func (c *Client) FetchSST(ctx context.Context, coord domain.Coordinate) (float64, error) {
	start := time.Now()

	result, err := c.circuit.Execute(func() (any, error) {
		return c.fetch(ctx, coord)
	})
	if err != nil {
		c.metrics.SSTRequests.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("fetch sst: %w", err)
	}

	c.metrics.SSTRequests.WithLabelValues("success").Inc()
	c.metrics.SSTRequestDuration.Observe(time.Since(start).Seconds())

	celsius := result.(float64)
	c.logger.Debug("live sst fetched", "lat", coord.Latitude, "lon", coord.Longitude, "celsius", celsius)
	return celsius, nil
}

func (c *Client) fetch(ctx context.Context, coord domain.Coordinate) (float64, error) {
	// Griddap constraint: last time step, nearest grid cell.
	query := fmt.Sprintf("sea_surface_temperature[(last)][(%.4f)][(%.4f)]",
		coord.Latitude, coord.Longitude)
	fullURL := c.baseURL + "?" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("sst request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("erddap API error: status %d: %s", resp.StatusCode, body)
	}

	var payload griddapResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if len(payload.Table.Rows) == 0 {
		return 0, fmt.Errorf("%w: no rows", ErrMalformedPayload)
	}
	row := payload.Table.Rows[0]
	if len(row) < 4 {
		return 0, fmt.Errorf("%w: row has %d cells, want at least 4", ErrMalformedPayload, len(row))
	}

	// Row layout: [time, latitude, longitude, sea_surface_temperature].
	kelvin, ok := row[3].(float64)
	if !ok {
		return 0, fmt.Errorf("%w: temperature cell %v is not numeric", ErrMalformedPayload, row[3])
	}

	return domain.Round1(domain.KelvinToCelsius(kelvin)), nil
}

// griddapResponse is the ERDDAP JSON table envelope.
type griddapResponse struct {
	Table struct {
		ColumnNames []string `json:"columnNames"`
		Rows        [][]any  `json:"rows"`
	} `json:"table"`
}
