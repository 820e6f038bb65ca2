package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ecodeli/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// localHTTPProvider implements PaymentProvider by sending HTTP POST requests
// to a local gateway stub, simulating an external payment API for development
type localHTTPProvider struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPProvider creates a new local HTTP payment provider for development
func NewLocalHTTPProvider(endpoint string, logger *slog.Logger) service.PaymentProvider {
	return &localHTTPProvider{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type intentRequest struct {
	Amount   decimal.Decimal   `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type intentResponse struct {
	ProviderRef string `json:"provider_ref"`
}

type captureRequest struct {
	ProviderRef string `json:"provider_ref"`
}

type refundRequest struct {
	ProviderRef string          `json:"provider_ref"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateIntent registers a pending charge with the gateway stub.
func (p *localHTTPProvider) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (string, error) {
	var response intentResponse
	err := p.post(ctx, "/intents", intentRequest{
		Amount:   amount,
		Currency: currency,
		Metadata: metadata,
	}, &response)
	if err != nil {
		return "", err
	}
	if response.ProviderRef == "" {
		return "", errors.New("gateway returned empty provider reference")
	}

	return response.ProviderRef, nil
}

// Capture confirms a previously created intent.
func (p *localHTTPProvider) Capture(ctx context.Context, providerRef string) error {
	return p.post(ctx, "/captures", captureRequest{ProviderRef: providerRef}, nil)
}

// Refund returns funds for a captured intent.
func (p *localHTTPProvider) Refund(ctx context.Context, providerRef string, amount decimal.Decimal) error {
	return p.post(ctx, "/refunds", refundRequest{ProviderRef: providerRef, Amount: amount}, nil)
}

func (p *localHTTPProvider) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.logger.DebugContext(ctx, "[LocalPayment] Calling gateway",
		slog.String("path", path),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("gateway returned non-success status: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(json.Unmarshal(data, out))
}
