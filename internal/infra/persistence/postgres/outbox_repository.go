package postgres

import (
	"context"
	"encoding/json"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// outboxRepository implements the domain.OutboxRepository interface using GORM.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{db: db}
}

// CreateOutboxEvent persists a new outbox event, normally inside the same
// transaction as the primary write it mirrors.
func (repo *outboxRepository) CreateOutboxEvent(ctx context.Context, event *entity.OutboxEvent) error {
	eventM := fromOutboxEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create outbox event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// ClaimPendingEvents retrieves up to limit pending events in insertion order,
// locking the rows for the caller's transaction. SKIP LOCKED lets concurrent
// drainers claim disjoint batches instead of blocking on each other; the
// locks hold until the surrounding transaction commits, so the claim must run
// through a transaction-bound repository.
func (repo *outboxRepository) ClaimPendingEvents(ctx context.Context, limit int) ([]*entity.OutboxEvent, error) {
	var eventMs []*model.OutboxEventModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("status = ?", string(entity.OutboxStatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&eventMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim pending outbox events")
	}

	events := make([]*entity.OutboxEvent, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, toOutboxEventDomain(eventM))
	}

	return events, nil
}

// MarkEventDelivered records a successful dispatch.
func (repo *outboxRepository) MarkEventDelivered(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(entity.OutboxStatusDelivered),
			"delivered_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark outbox event delivered")
	}

	return nil
}

// MarkEventFailed increments the attempt count and records the last error.
// Events exceeding maxAttempts move to FAILED, otherwise stay PENDING for the
// next sweep.
func (repo *outboxRepository) MarkEventFailed(ctx context.Context, id uuid.UUID, lastError string, maxAttempts int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": lastError,
			"status": gorm.Expr(
				"CASE WHEN attempts + 1 >= ? THEN ? ELSE ? END",
				maxAttempts,
				string(entity.OutboxStatusFailed),
				string(entity.OutboxStatusPending),
			),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark outbox event failed")
	}

	return nil
}

// --- Mapper Functions ---

// toOutboxEventDomain converts a GORM OutboxEventModel to a domain OutboxEvent entity.
func toOutboxEventDomain(data *model.OutboxEventModel) *entity.OutboxEvent {
	if data == nil {
		return nil
	}

	return &entity.OutboxEvent{
		ID:          data.ID,
		Kind:        data.Kind,
		Channel:     data.Channel,
		Payload:     json.RawMessage(data.Payload),
		Status:      entity.OutboxStatus(data.Status),
		Attempts:    data.Attempts,
		LastError:   data.LastError,
		CreatedAt:   data.CreatedAt,
		DeliveredAt: data.DeliveredAt,
	}
}

// fromOutboxEventDomain converts a domain OutboxEvent entity to a GORM OutboxEventModel for persistence.
func fromOutboxEventDomain(data *entity.OutboxEvent) *model.OutboxEventModel {
	if data == nil {
		return nil
	}

	return &model.OutboxEventModel{
		ID:        data.ID,
		Kind:      data.Kind,
		Channel:   data.Channel,
		Payload:   []byte(data.Payload),
		Status:    string(data.Status),
		Attempts:  data.Attempts,
		LastError: data.LastError,
	}
}
