package model

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEntryModel mirrors the 'tracking_entries' table. Rows are append-only;
// Sequence is a bigserial giving a total order for entries sharing a timestamp.
type TrackingEntryModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeliveryID       uuid.UUID `gorm:"type:uuid;not null;index:idx_tracking_delivery_seq,priority:1"`
	Status           string    `gorm:"type:varchar(20);not null"`
	Message          string    `gorm:"type:text;not null"`
	Location         string    `gorm:"type:text"`
	Latitude         *float64  `gorm:"type:double precision"`
	Longitude        *float64  `gorm:"type:double precision"`
	EstimatedArrival *time.Time
	Sequence         int64 `gorm:"autoIncrement;index:idx_tracking_delivery_seq,priority:2"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (TrackingEntryModel) TableName() string {
	return "tracking_entries"
}
