package postgres

import (
	"context"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// trackingRepository implements the domain.TrackingRepository interface using GORM.
// Entries are append-only; the repository exposes no update or delete paths.
type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository is the constructor for trackingRepository.
func NewTrackingRepository(db *gorm.DB) repository.TrackingRepository {
	return &trackingRepository{db: db}
}

// CreateTrackingEntry persists a new tracking entry.
func (repo *trackingRepository) CreateTrackingEntry(ctx context.Context, entry *entity.TrackingEntry) error {
	entryM := fromTrackingEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDeliveryNotFound.WrapMessage("delivery does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tracking entry")
	}

	entry.ID = entryM.ID
	entry.Sequence = entryM.Sequence
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindRecentEntriesByDelivery retrieves up to limit entries for a delivery,
// newest first. Sequence breaks ties between entries sharing a timestamp.
func (repo *trackingRepository) FindRecentEntriesByDelivery(ctx context.Context, deliveryID uuid.UUID, limit int) ([]*entity.TrackingEntry, error) {
	var entryMs []*model.TrackingEntryModel

	err := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Order("created_at DESC, sequence DESC").
		Limit(limit).
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent tracking entries")
	}

	return toTrackingEntryDomainList(entryMs), nil
}

// FindRouteEntriesByDelivery retrieves the entries carrying coordinates for a
// delivery in chronological order.
func (repo *trackingRepository) FindRouteEntriesByDelivery(ctx context.Context, deliveryID uuid.UUID) ([]*entity.TrackingEntry, error) {
	var entryMs []*model.TrackingEntryModel

	err := repo.db.WithContext(ctx).
		Where("delivery_id = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", deliveryID).
		Order("created_at ASC, sequence ASC").
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find route entries")
	}

	return toTrackingEntryDomainList(entryMs), nil
}

// --- Mapper Functions ---

func toTrackingEntryDomainList(data []*model.TrackingEntryModel) []*entity.TrackingEntry {
	entries := make([]*entity.TrackingEntry, 0, len(data))
	for _, entryM := range data {
		entries = append(entries, toTrackingEntryDomain(entryM))
	}

	return entries
}

// toTrackingEntryDomain converts a GORM TrackingEntryModel to a domain TrackingEntry entity.
func toTrackingEntryDomain(data *model.TrackingEntryModel) *entity.TrackingEntry {
	if data == nil {
		return nil
	}

	return &entity.TrackingEntry{
		ID:               data.ID,
		DeliveryID:       data.DeliveryID,
		Status:           entity.DeliveryStatus(data.Status),
		Message:          data.Message,
		Location:         data.Location,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		EstimatedArrival: data.EstimatedArrival,
		Sequence:         data.Sequence,
		CreatedAt:        data.CreatedAt,
	}
}

// fromTrackingEntryDomain converts a domain TrackingEntry entity to a GORM TrackingEntryModel for persistence.
func fromTrackingEntryDomain(data *entity.TrackingEntry) *model.TrackingEntryModel {
	if data == nil {
		return nil
	}

	return &model.TrackingEntryModel{
		ID:               data.ID,
		DeliveryID:       data.DeliveryID,
		Status:           string(data.Status),
		Message:          data.Message,
		Location:         data.Location,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		EstimatedArrival: data.EstimatedArrival,
	}
}
