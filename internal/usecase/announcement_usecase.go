package usecase

import (
	"context"

	"ecodeli/internal/domain/entity"
)

// NearbySort selects the secondary ordering of nearby search results.
// Results are always ordered by ascending distance first.
const (
	NearbySortDistance = "distance"
	NearbySortPrice    = "price"
	NearbySortRating   = "rating"
)

// NearbySearchInput represents the input for the nearby announcement search
type NearbySearchInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km,omitempty"`
	Sort      string  `json:"sort,omitempty"`
}

// NearbyAnnouncement is a search hit with its distance from the query point.
type NearbyAnnouncement struct {
	Announcement *entity.Announcement `json:"announcement"`
	DistanceKm   float64              `json:"distance_km"`
}

// AnnouncementUsecase defines the interface for announcement search use cases
type AnnouncementUsecase interface {
	// SearchNearby returns searchable announcements having any location point
	// within the radius of the query point.
	SearchNearby(ctx context.Context, input *NearbySearchInput) ([]*NearbyAnnouncement, error)
}
