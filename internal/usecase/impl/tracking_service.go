package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ecodeli/config"
	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/policy"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/errors"
	"ecodeli/internal/geo"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Proximity thresholds in kilometers for recipient alerts, nearest first.
var proximityAlerts = []struct {
	withinKm float64
	message  string
}{
	{0.05, "Votre livreur est arrivé"},
	{0.5, "Votre livreur est à moins de 500 m"},
	{2.0, "Votre livreur est à moins de 2 km"},
}

type trackingService struct {
	txManager        repository.TransactionManager
	deliveryRepo     repository.DeliveryRepository
	trackingRepo     repository.TrackingRepository
	announcementRepo repository.AnnouncementRepository
	outbox           usecase.OutboxUsecase
	config           *config.Config
	logger           *slog.Logger
}

// NewTrackingService creates a new tracking and ETA service instance
func NewTrackingService(
	txManager repository.TransactionManager,
	deliveryRepo repository.DeliveryRepository,
	trackingRepo repository.TrackingRepository,
	announcementRepo repository.AnnouncementRepository,
	outbox usecase.OutboxUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	if cfg.Tracking == nil {
		cfg.Tracking = &config.TrackingConfig{
			DefaultSpeedKmh:     30,
			DefaultRemainingKm:  10,
			LiveHistoryLimit:    50,
			SummaryHistoryLimit: 10,
		}
	}

	return &trackingService{
		txManager:        txManager,
		deliveryRepo:     deliveryRepo,
		trackingRepo:     trackingRepo,
		announcementRepo: announcementRepo,
		outbox:           outbox,
		config:           cfg,
		logger:           logger,
	}
}

// RecordEntry appends a position/progress observation for a delivery and
// mirrors it on the outbox for live fan-out.
func (s *trackingService) RecordEntry(ctx context.Context, deliveryID uuid.UUID, actor usecase.Actor, input *usecase.RecordEntryInput) (*entity.TrackingEntry, error) {
	permitted := false
	for _, role := range actor.Roles {
		if policy.Allowed(role, policy.OperationRecordTracking) {
			permitted = true

			break
		}
	}
	if !permitted {
		return nil, domainerrors.ErrForbidden
	}

	if input.Latitude != nil && input.Longitude != nil {
		if !geo.IsValidCoordinate(*input.Latitude, *input.Longitude) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of bounds")
		}
	}

	var entry *entity.TrackingEntry

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		delivery, err := f.NewDeliveryRepository().FindDeliveryByID(ctx, deliveryID)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryNotFound) {
				return domainerrors.ErrDeliveryNotFound
			}

			return errors.Wrap(err, "find delivery")
		}

		if !actor.HasRole(entity.RoleAdmin) {
			if delivery.DelivererID == nil || *delivery.DelivererID != actor.ID {
				return domainerrors.ErrDeliveryNotAssigned
			}
		}

		entry = &entity.TrackingEntry{
			ID:               uuid.New(),
			DeliveryID:       delivery.ID,
			Status:           delivery.Status,
			Message:          input.Message,
			Location:         input.Location,
			Latitude:         input.Latitude,
			Longitude:        input.Longitude,
			EstimatedArrival: input.EstimatedArrival,
			CreatedAt:        time.Now(),
		}
		if err := f.NewTrackingRepository().CreateTrackingEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "create tracking entry")
		}

		if err := createDeliveryUpdateEvent(ctx, f.NewOutboxRepository(), delivery, delivery.Status, input.Message); err != nil {
			return errors.Wrap(err, "create outbox event")
		}

		if entry.HasCoordinates() {
			if err := s.createProximityAlert(ctx, f, delivery, entry); err != nil {
				return errors.Wrap(err, "create proximity alert")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.outbox != nil {
		if _, err := s.outbox.Drain(ctx); err != nil {
			s.logger.WarnContext(ctx, "synchronous outbox drain failed, background drainer will retry",
				slog.Any("error", err))
		}
	}

	return entry, nil
}

// GetTracking builds the tracking view for a delivery.
func (s *trackingService) GetTracking(ctx context.Context, deliveryID uuid.UUID, mode usecase.TrackingMode) (*usecase.TrackingView, error) {
	delivery, err := s.deliveryRepo.FindDeliveryByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "find delivery")
	}

	limit := s.config.Tracking.LiveHistoryLimit
	if mode == usecase.TrackingModeSummary {
		limit = s.config.Tracking.SummaryHistoryLimit
	}

	entries, err := s.trackingRepo.FindRecentEntriesByDelivery(ctx, delivery.ID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "find recent entries")
	}

	routeEntries, err := s.trackingRepo.FindRouteEntriesByDelivery(ctx, delivery.ID)
	if err != nil {
		return nil, errors.Wrap(err, "find route entries")
	}

	route := make([]orb.Point, 0, len(routeEntries))
	for _, e := range routeEntries {
		route = append(route, geo.NewPoint(*e.Latitude, *e.Longitude))
	}

	view := &usecase.TrackingView{
		Delivery:   delivery,
		Progress:   delivery.Status.Progress(),
		Entries:    entries,
		TraveledKm: geo.TotalRouteKm(route),
	}

	if !delivery.Status.IsTerminal() && delivery.Status != entity.DeliveryStatusDelivered {
		view.EstimatedArrival = s.estimateArrival(ctx, delivery, entries, route)
	}

	return view, nil
}

// estimateArrival prefers the latest explicitly reported estimate. Without
// one it falls back to a linear speed heuristic over the remaining distance.
// The heuristic is a documented placeholder, not a routing engine.
func (s *trackingService) estimateArrival(ctx context.Context, delivery *entity.Delivery, entries []*entity.TrackingEntry, route []orb.Point) *time.Time {
	// Entries are newest first.
	for _, e := range entries {
		if e.EstimatedArrival != nil {
			return e.EstimatedArrival
		}
	}

	remainingKm := s.config.Tracking.DefaultRemainingKm
	if len(route) > 0 {
		if destination, ok := s.deliveryDestination(ctx, delivery); ok {
			remainingKm = geo.DistanceKm(route[len(route)-1], destination)
		}
	}

	speed := s.config.Tracking.DefaultSpeedKmh
	if speed <= 0 {
		speed = 30
	}

	eta := time.Now().Add(time.Duration(remainingKm / speed * float64(time.Hour)))

	return &eta
}

func (s *trackingService) deliveryDestination(ctx context.Context, delivery *entity.Delivery) (orb.Point, bool) {
	announcement, err := s.announcementRepo.FindAnnouncementByID(ctx, delivery.AnnouncementID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to resolve delivery destination",
			slog.String("delivery_id", delivery.ID.String()),
			slog.Any("error", err))

		return orb.Point{}, false
	}
	if announcement.DeliveryLatitude == 0 && announcement.DeliveryLongitude == 0 {
		// Unset destination coordinates.
		return orb.Point{}, false
	}

	return geo.NewPoint(announcement.DeliveryLatitude, announcement.DeliveryLongitude), true
}

// createProximityAlert emits a SYSTEM_ALERT when the reported position comes
// within one of the alert thresholds of the destination.
func (s *trackingService) createProximityAlert(ctx context.Context, f repository.RepositoryFactory, delivery *entity.Delivery, entry *entity.TrackingEntry) error {
	destination, ok := s.deliveryDestination(ctx, delivery)
	if !ok {
		return nil
	}

	distance := geo.DistanceKm(geo.NewPoint(*entry.Latitude, *entry.Longitude), destination)
	for _, alert := range proximityAlerts {
		if distance > alert.withinKm {
			continue
		}

		payload, err := json.Marshal(map[string]any{
			"delivery_id": delivery.ID.String(),
			"message":     alert.message,
			"distance_km": distance,
		})
		if err != nil {
			return errors.Wrap(err, "marshal proximity alert")
		}

		return f.NewOutboxRepository().CreateOutboxEvent(ctx, &entity.OutboxEvent{
			ID:        uuid.New(),
			Kind:      entity.EventKindSystemAlert,
			Channel:   deliveryChannel(delivery.ID),
			Payload:   payload,
			Status:    entity.OutboxStatusPending,
			CreatedAt: time.Now(),
		})
	}

	return nil
}
