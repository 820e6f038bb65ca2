package model

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEventModel mirrors the 'outbox_events' table. Rows are written in the
// same transaction as the primary change they mirror and claimed by drainers
// with FOR UPDATE SKIP LOCKED.
type OutboxEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind        string    `gorm:"type:varchar(40);not null"`
	Channel     string    `gorm:"type:varchar(255);not null"`
	Payload     []byte    `gorm:"type:jsonb;not null"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	Attempts    int       `gorm:"not null;default:0"`
	LastError   string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
	DeliveredAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OutboxEventModel) TableName() string {
	return "outbox_events"
}
