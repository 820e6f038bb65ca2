package repository

import (
	"context"
	"errors"
	"time"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAnnouncementNotFound is returned when an announcement is not found.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementRepository defines the interface for announcement-related database operations.
type AnnouncementRepository interface {
	// CreateAnnouncement persists a new announcement.
	CreateAnnouncement(ctx context.Context, announcement *entity.Announcement) error

	// FindAnnouncementByID retrieves an announcement by its unique ID.
	FindAnnouncementByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)

	// FindAnnouncementByIDForUpdate retrieves an announcement and locks its row
	// for the duration of the surrounding transaction.
	FindAnnouncementByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)

	// CancelAnnouncement marks an announcement CANCELLED with the given reason.
	CancelAnnouncement(ctx context.Context, id uuid.UUID, reason string, cancelledAt time.Time) error

	// FindSearchableAnnouncements retrieves announcements visible to the nearby
	// search, i.e. ACTIVE or MATCHED ones with coordinates.
	FindSearchableAnnouncements(ctx context.Context, limit int) ([]*entity.Announcement, error)
}
