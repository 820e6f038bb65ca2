package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel mirrors the 'payments' table. EntityType plus EntityID form a
// polymorphic reference to the paid-for record.
type PaymentModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PayerID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency          string          `gorm:"type:varchar(3);not null"`
	Status            string          `gorm:"type:varchar(20);not null;index"`
	EntityType        string          `gorm:"type:varchar(20);not null;index:idx_payments_entity,priority:1"`
	EntityID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_payments_entity,priority:2"`
	PaymentMethod     string          `gorm:"type:varchar(20);not null"`
	ProviderReference string          `gorm:"type:varchar(255);index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// WalletModel mirrors the 'wallets' table, one row per user.
type WalletModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;unique"`
	Balance   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Currency  string          `gorm:"type:varchar(3);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletModel) TableName() string {
	return "wallets"
}
