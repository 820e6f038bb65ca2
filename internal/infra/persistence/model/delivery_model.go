package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryModel mirrors the 'deliveries' table. AnnouncementID references announcements.id (UUID).
// Version backs the optimistic guard on status writes.
type DeliveryModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AnnouncementID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	DelivererID       *uuid.UUID      `gorm:"type:uuid;index"`
	Status            string          `gorm:"type:varchar(20);not null;index"`
	ValidationCode    string          `gorm:"type:varchar(12);not null"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EstimatedDuration int             `gorm:"not null;default:0"`
	ScheduledAt       time.Time
	CompletedAt       *time.Time
	Version           int `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	TrackingEntries []*TrackingEntryModel `gorm:"foreignKey:DeliveryID"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
