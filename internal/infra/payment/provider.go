// Package payment provides payment gateway implementations behind the
// PaymentProvider interface.
package payment

import (
	"log/slog"

	"ecodeli/config"
	"ecodeli/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported payment providers.
const (
	ProviderSandbox = "sandbox"
	ProviderLocal   = "local"
)

// ProviderParams holds dependencies for PaymentProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentProvider creates a PaymentProvider based on configuration.
// The sandbox provider settles everything in memory and is the default for
// development and tests.
func NewPaymentProvider(params ProviderParams) (service.PaymentProvider, error) {
	cfg := params.Config.Payment
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderSandbox {
		logger.Info("Using sandbox payment provider")

		return NewSandboxProvider(logger), nil
	}

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP payment provider",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPProvider(cfg.LocalEndpoint, logger), nil

	default:
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Provider)
	}
}

// Module provides the payment FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPaymentProvider),
)
