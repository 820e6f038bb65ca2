package impl

import (
	"context"

	"ecodeli/config"
	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/errors"
	"ecodeli/internal/geo"
	"ecodeli/internal/usecase"

	"github.com/paulmach/orb"
)

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	config           *config.Config
}

// NewAnnouncementService creates a new announcement search service instance
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository, cfg *config.Config) usecase.AnnouncementUsecase {
	if cfg.Search == nil {
		cfg.Search = &config.SearchConfig{
			DefaultRadiusKm: geo.DefaultNearbyRadiusKm,
			MaxRadiusKm:     50,
			MaxCandidates:   500,
		}
	}

	return &announcementService{
		announcementRepo: announcementRepo,
		config:           cfg,
	}
}

// SearchNearby returns searchable announcements with any location point
// within the radius of the query point, ordered by ascending distance.
func (s *announcementService) SearchNearby(ctx context.Context, input *usecase.NearbySearchInput) ([]*usecase.NearbyAnnouncement, error) {
	if !geo.IsValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of bounds")
	}

	radius := input.RadiusKm
	if radius <= 0 {
		radius = s.config.Search.DefaultRadiusKm
	}
	if radius > s.config.Search.MaxRadiusKm {
		radius = s.config.Search.MaxRadiusKm
	}

	announcements, err := s.announcementRepo.FindSearchableAnnouncements(ctx, s.config.Search.MaxCandidates)
	if err != nil {
		return nil, errors.Wrap(err, "find searchable announcements")
	}

	candidates := make([]geo.Candidate, 0, len(announcements))
	for _, a := range announcements {
		price, _ := a.Price.Float64()
		candidates = append(candidates, geo.Candidate{
			Ref: a,
			Points: []orb.Point{
				geo.NewPoint(a.PickupLatitude, a.PickupLongitude),
				geo.NewPoint(a.DeliveryLatitude, a.DeliveryLongitude),
			},
			Price:  price,
			Rating: a.Rating,
		})
	}

	var secondary geo.SecondarySort
	switch input.Sort {
	case usecase.NearbySortPrice:
		secondary = geo.SecondaryPrice
	case usecase.NearbySortRating:
		secondary = geo.SecondaryRating
	}

	hits := geo.Nearby(geo.NewPoint(input.Latitude, input.Longitude), radius, candidates, secondary)

	results := make([]*usecase.NearbyAnnouncement, 0, len(hits))
	for _, hit := range hits {
		results = append(results, &usecase.NearbyAnnouncement{
			Announcement: hit.Ref.(*entity.Announcement),
			DistanceKm:   hit.DistanceKm,
		})
	}

	return results, nil
}
