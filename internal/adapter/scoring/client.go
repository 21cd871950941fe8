// Package scoring is the HTTP client of the external propensity model.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultServiceType = domain.ServiceExpress
)

// Request is one case sent to the model.
type Request struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	CustomerName  *string `json:"customerName"`
	Amount        float64 `json:"amount"`
	DaysOverdue   int     `json:"daysOverdue"`
	ServiceType   string  `json:"serviceType"`
	PastDefaults  int     `json:"pastDefaults"`
}

// Prediction is the model output for one invoice.
type Prediction struct {
	InvoiceNumber   string  `json:"invoiceNumber"`
	PropensityScore float64 `json:"propensityScore"`
}

type predictResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// RequestFor builds the model payload of a case. Missing numeric fields are
// sent as zero and a missing service type as EXPRESS.
func RequestFor(c *domain.Case) Request {
	st := defaultServiceType
	if c.ServiceType != nil {
		st = *c.ServiceType
	}
	return Request{
		InvoiceNumber: c.InvoiceNumber,
		CustomerName:  c.CustomerName,
		Amount:        c.AmountOrZero().InexactFloat64(),
		DaysOverdue:   c.DaysOverdueOrZero(),
		ServiceType:   st.String(),
		PastDefaults:  c.PastDefaultsOrZero(),
	}
}

// Client calls the scoring service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. A zero timeout means 10s.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "scoring"),
	}
}

// Predict scores a batch of cases in one attempt. Any transport failure,
// non-2xx status or undecodable body is reported as domain.ErrUpstream.
func (c *Client) Predict(ctx context.Context, reqs []Request) ([]Prediction, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	payload, err := json.Marshal(reqs)
	if err != nil {
		return nil, fmt.Errorf("scoring: encode request: %w", err)
	}

	c.log.DebugContext(ctx, "predict request", slog.Int("cases", len(reqs)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("scoring: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, upstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstream(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, upstream(fmt.Errorf("read body: %w", err))
	}
	var out predictResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, upstream(fmt.Errorf("decode json: %w", err))
	}

	c.log.DebugContext(ctx, "predict response",
		slog.Int("status", resp.StatusCode),
		slog.Int("predictions", len(out.Predictions)))
	return out.Predictions, nil
}

// Healthy reports whether GET /health answers with a 2xx status.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "health check failed", slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

func upstream(err error) error {
	if errors.Is(err, domain.ErrUpstream) {
		return err
	}
	return &domain.UpstreamError{Service: "scoring", Err: err}
}
