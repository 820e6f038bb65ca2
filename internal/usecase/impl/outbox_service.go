package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"ecodeli/config"
	"ecodeli/internal/domain/entity"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/domain/service"
	"ecodeli/internal/errors"
	"ecodeli/internal/usecase"
)

type outboxService struct {
	txManager  repository.TransactionManager
	dispatcher service.EventDispatcher
	publisher  service.EventPublisher
	config     *config.Config
	logger     *slog.Logger
}

// NewOutboxService creates a new outbox drain service instance
func NewOutboxService(
	txManager repository.TransactionManager,
	dispatcher service.EventDispatcher,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OutboxUsecase {
	if cfg.Outbox == nil {
		cfg.Outbox = &config.OutboxConfig{
			DrainInterval: 0,
			BatchSize:     100,
			MaxAttempts:   5,
		}
	}

	return &outboxService{
		txManager:  txManager,
		dispatcher: dispatcher,
		publisher:  publisher,
		config:     cfg,
		logger:     logger,
	}
}

// Drain claims a batch of pending events and dispatches each to the live
// hub and the event publisher. The whole claim-dispatch-mark cycle runs in
// one transaction, so the SKIP LOCKED row locks from the claim hold until
// commit and a concurrent drainer skips the batch instead of re-publishing
// it. The hub fan-out is fire-and-forget; only a publisher failure keeps an
// event queued for another attempt.
func (s *outboxService) Drain(ctx context.Context) (int, error) {
	claimed := 0

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		outboxRepo := f.NewOutboxRepository()

		events, err := outboxRepo.ClaimPendingEvents(ctx, s.config.Outbox.BatchSize)
		if err != nil {
			return errors.Wrap(err, "claim pending events")
		}
		claimed = len(events)

		for _, event := range events {
			if err := s.dispatch(ctx, event); err != nil {
				s.logger.WarnContext(ctx, "outbox event dispatch failed",
					slog.String("event_id", event.ID.String()),
					slog.String("kind", event.Kind),
					slog.Any("error", err))

				if markErr := outboxRepo.MarkEventFailed(ctx, event.ID, err.Error(), s.config.Outbox.MaxAttempts); markErr != nil {
					return errors.Wrap(markErr, "mark event failed")
				}

				continue
			}

			if err := outboxRepo.MarkEventDelivered(ctx, event.ID); err != nil {
				return errors.Wrap(err, "mark event delivered")
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return claimed, nil
}

func (s *outboxService) dispatch(ctx context.Context, event *entity.OutboxEvent) error {
	if s.dispatcher != nil {
		s.dispatcher.Broadcast(event.Channel, event.Kind, event.Payload)
	}

	if s.publisher == nil {
		return nil
	}

	deliveryEvent := &service.DeliveryEvent{}
	if err := json.Unmarshal(event.Payload, deliveryEvent); err != nil {
		return errors.Wrap(err, "unmarshal event payload")
	}
	deliveryEvent.Kind = event.Kind

	return errors.Wrap(s.publisher.PublishDeliveryEvent(ctx, deliveryEvent), "publish delivery event")
}
