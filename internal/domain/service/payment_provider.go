package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentProvider abstracts the external payment gateway. All calls are
// asynchronous on the provider side; outcomes are confirmed through the
// webhook endpoint carrying the provider reference.
type PaymentProvider interface {
	// CreateIntent registers a pending charge and returns the provider's
	// opaque reference for it.
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (providerRef string, err error)

	// Capture confirms a previously created intent.
	Capture(ctx context.Context, providerRef string) error

	// Refund returns funds for a captured intent, partially or in full.
	Refund(ctx context.Context, providerRef string, amount decimal.Decimal) error
}
