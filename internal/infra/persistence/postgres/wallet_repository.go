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

// walletRepository implements the domain.WalletRepository interface using GORM.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

// FindWalletByUserIDForUpdate retrieves a user's wallet and locks its row for
// the duration of the surrounding transaction. Debits and credits must read
// through this method so concurrent balance changes serialize per wallet.
func (repo *walletRepository) FindWalletByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	var walletM model.WalletModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("user_id = ?", userID).
		First(&walletM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to lock wallet by user id")
	}

	return toWalletDomain(&walletM), nil
}

// UpdateWalletBalance persists a new balance for the wallet.
func (repo *walletRepository) UpdateWalletBalance(ctx context.Context, wallet *entity.Wallet) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("id = ?", wallet.ID).
		Updates(map[string]any{
			"balance":    wallet.Balance,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update wallet balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWalletNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toWalletDomain converts a GORM WalletModel to a domain Wallet entity.
func toWalletDomain(data *model.WalletModel) *entity.Wallet {
	if data == nil {
		return nil
	}

	return &entity.Wallet{
		ID:        data.ID,
		UserID:    data.UserID,
		Balance:   data.Balance,
		Currency:  data.Currency,
		UpdatedAt: data.UpdatedAt,
	}
}
