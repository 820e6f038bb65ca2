package payment

import (
	"context"
	"log/slog"
	"sync"

	"ecodeli/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type intentState string

const (
	intentCreated  intentState = "created"
	intentCaptured intentState = "captured"
	intentRefunded intentState = "refunded"
)

type sandboxIntent struct {
	amount   decimal.Decimal
	currency string
	state    intentState
	refunded decimal.Decimal
}

// sandboxProvider is an in-memory PaymentProvider for development and tests.
// It accepts every charge and tracks intent state so capture and refund
// ordering errors still surface.
type sandboxProvider struct {
	mu      sync.Mutex
	intents map[string]*sandboxIntent
	logger  *slog.Logger
}

// NewSandboxProvider creates a new in-memory payment provider instance
func NewSandboxProvider(logger *slog.Logger) service.PaymentProvider {
	return &sandboxProvider{
		intents: make(map[string]*sandboxIntent),
		logger:  logger,
	}
}

// CreateIntent registers a pending charge and returns an opaque reference.
func (p *sandboxProvider) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (string, error) {
	if amount.IsNegative() {
		return "", errors.New("amount must not be negative")
	}

	providerRef := "sbx_" + uuid.NewString()

	p.mu.Lock()
	p.intents[providerRef] = &sandboxIntent{
		amount:   amount,
		currency: currency,
		state:    intentCreated,
	}
	p.mu.Unlock()

	p.logger.DebugContext(ctx, "[SandboxPayment] Intent created",
		slog.String("provider_ref", providerRef),
		slog.String("amount", amount.String()),
		slog.String("currency", currency),
	)

	return providerRef, nil
}

// Capture confirms a previously created intent.
func (p *sandboxProvider) Capture(ctx context.Context, providerRef string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	intent, ok := p.intents[providerRef]
	if !ok {
		return errors.Errorf("unknown intent: %s", providerRef)
	}
	if intent.state == intentRefunded {
		return errors.Errorf("intent already refunded: %s", providerRef)
	}

	intent.state = intentCaptured

	p.logger.DebugContext(ctx, "[SandboxPayment] Intent captured",
		slog.String("provider_ref", providerRef),
	)

	return nil
}

// Refund returns funds for a captured intent, partially or in full.
func (p *sandboxProvider) Refund(ctx context.Context, providerRef string, amount decimal.Decimal) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	intent, ok := p.intents[providerRef]
	if !ok {
		return errors.Errorf("unknown intent: %s", providerRef)
	}
	if intent.state != intentCaptured {
		return errors.Errorf("intent not captured: %s", providerRef)
	}

	remaining := intent.amount.Sub(intent.refunded)
	if amount.GreaterThan(remaining) {
		return errors.Errorf("refund exceeds remaining amount: %s > %s", amount, remaining)
	}

	intent.refunded = intent.refunded.Add(amount)
	if intent.refunded.Equal(intent.amount) {
		intent.state = intentRefunded
	}

	p.logger.DebugContext(ctx, "[SandboxPayment] Intent refunded",
		slog.String("provider_ref", providerRef),
		slog.String("amount", amount.String()),
	)

	return nil
}
