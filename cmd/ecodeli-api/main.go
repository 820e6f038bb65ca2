package main

import (
	"context"
	"log/slog"
	"os"

	"ecodeli/config"
	"ecodeli/internal/delivery"
	"ecodeli/internal/delivery/http"
	"ecodeli/internal/delivery/http/middleware"
	"ecodeli/internal/delivery/http/router/handler"
	"ecodeli/internal/delivery/worker"
	"ecodeli/internal/domain/service"
	"ecodeli/internal/infra/auth"
	"ecodeli/internal/infra/dispatch"
	logs "ecodeli/internal/infra/log"
	"ecodeli/internal/infra/payment"
	"ecodeli/internal/infra/persistence/postgres"
	"ecodeli/internal/infra/pubsub"
	"ecodeli/internal/infra/qrcode"
	"ecodeli/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		payment.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewDeliveryRepository,
			postgres.NewAnnouncementRepository,
			postgres.NewTrackingRepository,
			postgres.NewPaymentRepository,
			postgres.NewWalletRepository,
			postgres.NewOutboxRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			dispatch.NewHub,
			asEventDispatcher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// asEventDispatcher exposes the websocket hub as the outbox event dispatcher
func asEventDispatcher(hub *dispatch.Hub) service.EventDispatcher {
	return hub
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOutboxService,
			impl.NewPaymentService,
			impl.NewDeliveryService,
			impl.NewTrackingService,
			impl.NewCancellationService,
			impl.NewAnnouncementService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeliveryHandler,
			handler.NewTrackingHandler,
			handler.NewAnnouncementHandler,
			handler.NewPaymentHandler,
			handler.NewDispatchHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewOutboxDrainer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
