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
)

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// CreatePayment persists a new payment.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("payment already recorded")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindPaymentByID retrieves a payment by its unique ID.
func (repo *paymentRepository) FindPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindLatestPaymentByEntity retrieves the most recent payment attached to an entity.
func (repo *paymentRepository) FindLatestPaymentByEntity(ctx context.Context, entityType entity.PaymentEntityType, entityID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	err := repo.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", string(entityType), entityID).
		Order("created_at DESC").
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest payment by entity")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindPaymentByProviderReference retrieves a payment by the provider's opaque reference.
func (repo *paymentRepository) FindPaymentByProviderReference(ctx context.Context, providerRef string) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	err := repo.db.WithContext(ctx).
		Where("provider_reference = ?", providerRef).
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by provider reference")
	}

	return toPaymentDomain(&paymentM), nil
}

// UpdatePaymentStatus persists a payment status change.
func (repo *paymentRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:                data.ID,
		PayerID:           data.PayerID,
		Amount:            data.Amount,
		Currency:          data.Currency,
		Status:            entity.PaymentStatus(data.Status),
		EntityType:        entity.PaymentEntityType(data.EntityType),
		EntityID:          data.EntityID,
		PaymentMethod:     entity.PaymentMethod(data.PaymentMethod),
		ProviderReference: data.ProviderReference,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel for persistence.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:                data.ID,
		PayerID:           data.PayerID,
		Amount:            data.Amount,
		Currency:          data.Currency,
		Status:            string(data.Status),
		EntityType:        string(data.EntityType),
		EntityID:          data.EntityID,
		PaymentMethod:     string(data.PaymentMethod),
		ProviderReference: data.ProviderReference,
	}
}
