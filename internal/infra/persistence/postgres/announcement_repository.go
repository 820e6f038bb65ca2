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

// announcementRepository implements the domain.AnnouncementRepository interface using GORM.
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(db *gorm.DB) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// CreateAnnouncement persists a new announcement.
func (repo *announcementRepository) CreateAnnouncement(ctx context.Context, announcement *entity.Announcement) error {
	announcementM := fromAnnouncementDomain(announcement)

	if err := repo.db.WithContext(ctx).Create(announcementM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create announcement")
	}

	announcement.ID = announcementM.ID
	announcement.CreatedAt = announcementM.CreatedAt
	announcement.UpdatedAt = announcementM.UpdatedAt

	return nil
}

// FindAnnouncementByID retrieves an announcement by its unique ID.
func (repo *announcementRepository) FindAnnouncementByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcementM model.AnnouncementModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&announcementM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "failed to find announcement by id")
	}

	return toAnnouncementDomain(&announcementM), nil
}

// FindAnnouncementByIDForUpdate retrieves an announcement and locks its row
// for the duration of the surrounding transaction.
func (repo *announcementRepository) FindAnnouncementByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcementM model.AnnouncementModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&announcementM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "failed to lock announcement by id")
	}

	return toAnnouncementDomain(&announcementM), nil
}

// CancelAnnouncement marks an announcement CANCELLED with the given reason.
func (repo *announcementRepository) CancelAnnouncement(ctx context.Context, id uuid.UUID, reason string, cancelledAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AnnouncementModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              string(entity.AnnouncementStatusCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        cancelledAt,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to cancel announcement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnnouncementNotFound
	}

	return nil
}

// FindSearchableAnnouncements retrieves announcements visible to the nearby
// search, i.e. ACTIVE or MATCHED ones with coordinates.
func (repo *announcementRepository) FindSearchableAnnouncements(ctx context.Context, limit int) ([]*entity.Announcement, error) {
	var announcementMs []*model.AnnouncementModel

	err := repo.db.WithContext(ctx).
		Where("status IN ?", []string{
			string(entity.AnnouncementStatusActive),
			string(entity.AnnouncementStatusMatched),
		}).
		Where("(pickup_latitude <> 0 OR pickup_longitude <> 0 OR delivery_latitude <> 0 OR delivery_longitude <> 0)").
		Order("created_at DESC").
		Limit(limit).
		Find(&announcementMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find searchable announcements")
	}

	announcements := make([]*entity.Announcement, 0, len(announcementMs))
	for _, announcementM := range announcementMs {
		announcements = append(announcements, toAnnouncementDomain(announcementM))
	}

	return announcements, nil
}

// --- Mapper Functions ---

// toAnnouncementDomain converts a GORM AnnouncementModel to a domain Announcement entity.
func toAnnouncementDomain(data *model.AnnouncementModel) *entity.Announcement {
	if data == nil {
		return nil
	}

	return &entity.Announcement{
		ID:                 data.ID,
		ClientID:           data.ClientID,
		Title:              data.Title,
		Status:             entity.AnnouncementStatus(data.Status),
		Price:              data.Price,
		PickupAddress:      data.PickupAddress,
		PickupLatitude:     data.PickupLatitude,
		PickupLongitude:    data.PickupLongitude,
		DeliveryAddress:    data.DeliveryAddress,
		DeliveryLatitude:   data.DeliveryLatitude,
		DeliveryLongitude:  data.DeliveryLongitude,
		Rating:             data.Rating,
		CancelledAt:        data.CancelledAt,
		CancellationReason: data.CancellationReason,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromAnnouncementDomain converts a domain Announcement entity to a GORM AnnouncementModel for persistence.
func fromAnnouncementDomain(data *entity.Announcement) *model.AnnouncementModel {
	if data == nil {
		return nil
	}

	return &model.AnnouncementModel{
		ID:                 data.ID,
		ClientID:           data.ClientID,
		Title:              data.Title,
		Status:             string(data.Status),
		Price:              data.Price,
		PickupAddress:      data.PickupAddress,
		PickupLatitude:     data.PickupLatitude,
		PickupLongitude:    data.PickupLongitude,
		DeliveryAddress:    data.DeliveryAddress,
		DeliveryLatitude:   data.DeliveryLatitude,
		DeliveryLongitude:  data.DeliveryLongitude,
		Rating:             data.Rating,
		CancelledAt:        data.CancelledAt,
		CancellationReason: data.CancellationReason,
	}
}
