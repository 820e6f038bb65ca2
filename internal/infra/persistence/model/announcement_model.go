package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnnouncementModel mirrors the 'announcements' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AnnouncementModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title              string          `gorm:"type:varchar(255);not null"`
	Status             string          `gorm:"type:varchar(20);not null;index"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PickupAddress      string          `gorm:"type:text"`
	PickupLatitude     float64         `gorm:"type:double precision"`
	PickupLongitude    float64         `gorm:"type:double precision"`
	DeliveryAddress    string          `gorm:"type:text"`
	DeliveryLatitude   float64         `gorm:"type:double precision"`
	DeliveryLongitude  float64         `gorm:"type:double precision"`
	Rating             float64         `gorm:"type:double precision;default:0"`
	CancelledAt        *time.Time
	CancellationReason string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Deliveries []*DeliveryModel `gorm:"foreignKey:AnnouncementID"`
}

// TableName explicitly sets the table name for GORM.
func (AnnouncementModel) TableName() string {
	return "announcements"
}
