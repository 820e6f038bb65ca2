// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
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

// deliveryRepository implements the domain.DeliveryRepository interface using GORM.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// CreateDelivery persists a new delivery.
func (repo *deliveryRepository) CreateDelivery(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAnnouncementNotFound.WrapMessage("announcement does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	delivery.ID = deliveryM.ID
	delivery.Version = deliveryM.Version
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// FindDeliveryByID retrieves a delivery by its unique ID.
func (repo *deliveryRepository) FindDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deliveryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by id")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// FindDeliveryByIDForUpdate retrieves a delivery and locks its row for the
// duration of the surrounding transaction.
func (repo *deliveryRepository) FindDeliveryByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&deliveryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to lock delivery by id")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// UpdateDeliveryStatus persists a status change guarded by the version the
// caller read. A zero-row update means a concurrent transition won the row.
func (repo *deliveryRepository) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status entity.DeliveryStatus, completedAt *time.Time, expectedVersion int) error {
	updates := map[string]any{
		"status":     string(status),
		"version":    gorm.Expr("version + 1"),
		"updated_at": time.Now(),
	}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryVersionConflict
	}

	return nil
}

// FindDeliveriesByAnnouncement retrieves the deliveries bound to an announcement.
func (repo *deliveryRepository) FindDeliveriesByAnnouncement(ctx context.Context, announcementID uuid.UUID) ([]*entity.Delivery, error) {
	var deliveryMs []*model.DeliveryModel

	err := repo.db.WithContext(ctx).
		Where("announcement_id = ?", announcementID).
		Order("created_at DESC").
		Find(&deliveryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by announcement")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryMs))
	for _, deliveryM := range deliveryMs {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, nil
}

// --- Mapper Functions ---

// toDeliveryDomain converts a GORM DeliveryModel to a domain Delivery entity.
func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:                data.ID,
		AnnouncementID:    data.AnnouncementID,
		DelivererID:       data.DelivererID,
		Status:            entity.DeliveryStatus(data.Status),
		ValidationCode:    data.ValidationCode,
		Price:             data.Price,
		EstimatedDuration: data.EstimatedDuration,
		ScheduledAt:       data.ScheduledAt,
		CompletedAt:       data.CompletedAt,
		Version:           data.Version,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromDeliveryDomain converts a domain Delivery entity to a GORM DeliveryModel for persistence.
func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:                data.ID,
		AnnouncementID:    data.AnnouncementID,
		DelivererID:       data.DelivererID,
		Status:            string(data.Status),
		ValidationCode:    data.ValidationCode,
		Price:             data.Price,
		EstimatedDuration: data.EstimatedDuration,
		ScheduledAt:       data.ScheduledAt,
		CompletedAt:       data.CompletedAt,
		Version:           data.Version,
	}
}
