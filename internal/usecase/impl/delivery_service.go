package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/policy"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/domain/service"
	"ecodeli/internal/errors"
	"ecodeli/internal/usecase"
	"ecodeli/internal/util"

	"github.com/google/uuid"
)

const validationCodeLength = 6

// transitionMessages are the default tracking messages per reached status.
var transitionMessages = map[entity.DeliveryStatus]string{
	entity.DeliveryStatusAccepted:  "Livraison acceptée par le livreur",
	entity.DeliveryStatusPickup:    "Colis récupéré au point de collecte",
	entity.DeliveryStatusInTransit: "Colis en cours d'acheminement",
	entity.DeliveryStatusDelivered: "Colis remis au destinataire",
	entity.DeliveryStatusCompleted: "Livraison terminée",
	entity.DeliveryStatusCancelled: "Livraison annulée",
}

type deliveryService struct {
	txManager        repository.TransactionManager
	deliveryRepo     repository.DeliveryRepository
	announcementRepo repository.AnnouncementRepository
	paymentUsecase   usecase.PaymentUsecase
	qrcodeService    service.QRCodeService
	outbox           usecase.OutboxUsecase
	logger           *slog.Logger
}

// NewDeliveryService creates a new delivery lifecycle service instance
func NewDeliveryService(
	txManager repository.TransactionManager,
	deliveryRepo repository.DeliveryRepository,
	announcementRepo repository.AnnouncementRepository,
	paymentUsecase usecase.PaymentUsecase,
	qrcodeService service.QRCodeService,
	outbox usecase.OutboxUsecase,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:        txManager,
		deliveryRepo:     deliveryRepo,
		announcementRepo: announcementRepo,
		paymentUsecase:   paymentUsecase,
		qrcodeService:    qrcodeService,
		outbox:           outbox,
		logger:           logger,
	}
}

// CreateDelivery creates a delivery bound to an announcement with a fresh
// validation code. The code is generated once and never changes.
func (s *deliveryService) CreateDelivery(ctx context.Context, input *usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	if _, err := s.announcementRepo.FindAnnouncementByID(ctx, input.AnnouncementID); err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return nil, domainerrors.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "find announcement")
	}

	code, err := util.GenerateValidationCode(validationCodeLength)
	if err != nil {
		return nil, errors.Wrap(err, "generate validation code")
	}

	now := time.Now()
	delivery := &entity.Delivery{
		ID:                uuid.New(),
		AnnouncementID:    input.AnnouncementID,
		DelivererID:       input.DelivererID,
		Status:            entity.DeliveryStatusPending,
		ValidationCode:    code,
		Price:             input.Price,
		EstimatedDuration: input.EstimatedDuration,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.deliveryRepo.CreateDelivery(ctx, delivery); err != nil {
		return nil, errors.Wrap(err, "create delivery")
	}

	return delivery, nil
}

// GetDelivery retrieves a delivery by ID.
func (s *deliveryService) GetDelivery(ctx context.Context, id uuid.UUID) (*usecase.DeliveryView, error) {
	delivery, err := s.deliveryRepo.FindDeliveryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "find delivery")
	}

	return &usecase.DeliveryView{Delivery: delivery, Progress: delivery.Status.Progress()}, nil
}

// Transition moves a delivery along the status graph. The guarded read, the
// status write, the tracking entry and the outbox record share one
// transaction; the live fan-out happens after commit and never rolls the
// status back.
func (s *deliveryService) Transition(ctx context.Context, deliveryID uuid.UUID, actor usecase.Actor, input *usecase.TransitionInput) (*usecase.DeliveryView, error) {
	var updated *entity.Delivery

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		deliveryRepo := f.NewDeliveryRepository()

		delivery, err := deliveryRepo.FindDeliveryByIDForUpdate(ctx, deliveryID)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryNotFound) {
				return domainerrors.ErrDeliveryNotFound
			}

			return errors.Wrap(err, "lock delivery")
		}

		if err := s.authorizeTransition(ctx, f, delivery, actor, input.Target); err != nil {
			return err
		}

		if !entity.CanTransition(delivery.Status, input.Target) {
			return domainerrors.NewInvalidTransition(string(delivery.Status), string(input.Target))
		}

		if delivery.Status == entity.DeliveryStatusInTransit && input.Target == entity.DeliveryStatusDelivered {
			if input.ValidationCode != delivery.ValidationCode {
				return domainerrors.ErrInvalidValidationCode
			}
		}

		if input.Target == entity.DeliveryStatusCompleted {
			settled, err := s.paymentUsecase.IsSettled(ctx, entity.PaymentEntityDelivery, delivery.ID)
			if err != nil {
				return errors.Wrap(err, "check settlement")
			}
			if !settled {
				return domainerrors.ErrPaymentNotSettled
			}
		}

		now := time.Now()
		var completedAt *time.Time
		if input.Target == entity.DeliveryStatusCompleted {
			completedAt = &now
		}

		if err := deliveryRepo.UpdateDeliveryStatus(ctx, delivery.ID, input.Target, completedAt, delivery.Version); err != nil {
			return errors.Wrap(err, "update delivery status")
		}

		message := s.transitionMessage(actor, input)
		entry := &entity.TrackingEntry{
			ID:         uuid.New(),
			DeliveryID: delivery.ID,
			Status:     input.Target,
			Message:    message,
			Location:   input.Location,
			Latitude:   input.Latitude,
			Longitude:  input.Longitude,
			CreatedAt:  now,
		}
		if err := f.NewTrackingRepository().CreateTrackingEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "create tracking entry")
		}

		if err := createDeliveryUpdateEvent(ctx, f.NewOutboxRepository(), delivery, input.Target, message); err != nil {
			return errors.Wrap(err, "create outbox event")
		}

		delivery.Status = input.Target
		delivery.CompletedAt = completedAt
		delivery.UpdatedAt = now
		delivery.Version++
		updated = delivery

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.drainBestEffort(ctx)

	return &usecase.DeliveryView{Delivery: updated, Progress: updated.Status.Progress()}, nil
}

// ValidationQR renders the validation code as a QR image for the recipient.
func (s *deliveryService) ValidationQR(ctx context.Context, deliveryID uuid.UUID, actor usecase.Actor) ([]byte, error) {
	delivery, err := s.deliveryRepo.FindDeliveryByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "find delivery")
	}

	if !actor.HasRole(entity.RoleAdmin) {
		announcement, err := s.announcementRepo.FindAnnouncementByID(ctx, delivery.AnnouncementID)
		if err != nil {
			return nil, errors.Wrap(err, "find announcement")
		}
		if announcement.ClientID != actor.ID {
			return nil, domainerrors.ErrForbidden
		}
	}

	image, err := s.qrcodeService.GenerateValidationQR(delivery.ID, delivery.ValidationCode)
	if err != nil {
		return nil, errors.Wrap(err, "generate validation qr")
	}

	return image, nil
}

// authorizeTransition enforces the role table plus ownership: advances are
// reserved to the assigned deliverer and cancellations to the owner of the
// announcement, while system and admin actors skip the ownership checks for
// the operations their roles grant.
func (s *deliveryService) authorizeTransition(ctx context.Context, f repository.RepositoryFactory, delivery *entity.Delivery, actor usecase.Actor, target entity.DeliveryStatus) error {
	op := policy.OperationForTransition(target)

	permitted := false
	for _, role := range actor.Roles {
		if policy.Allowed(role, op) {
			permitted = true

			break
		}
	}
	if !permitted {
		return domainerrors.ErrForbidden
	}

	if actor.HasRole(entity.RoleAdmin) {
		return nil
	}

	switch op {
	case policy.OperationAdvanceDelivery:
		if delivery.DelivererID == nil || *delivery.DelivererID != actor.ID {
			return domainerrors.ErrDeliveryNotAssigned
		}
	case policy.OperationCancelDelivery:
		announcement, err := f.NewAnnouncementRepository().FindAnnouncementByID(ctx, delivery.AnnouncementID)
		if err != nil {
			return errors.Wrap(err, "find announcement")
		}
		if announcement.ClientID != actor.ID {
			return domainerrors.ErrForbidden
		}
	}

	return nil
}

// transitionMessage picks the tracking message for a transition. COMPLETED
// names its trigger so the audit trail distinguishes the payment webhook
// from an admin override.
func (s *deliveryService) transitionMessage(actor usecase.Actor, input *usecase.TransitionInput) string {
	if input.Message != "" {
		return input.Message
	}

	message := transitionMessages[input.Target]
	if input.Target == entity.DeliveryStatusCompleted {
		if actor.HasRole(entity.RoleSystem) {
			message = fmt.Sprintf("%s (confirmation du paiement)", message)
		} else {
			message = fmt.Sprintf("%s (validation par un administrateur)", message)
		}
	}

	return message
}

// drainBestEffort pushes the freshly written outbox rows synchronously.
// Failures stay queued for the background drainer.
func (s *deliveryService) drainBestEffort(ctx context.Context) {
	if s.outbox == nil {
		return
	}
	if _, err := s.outbox.Drain(ctx); err != nil {
		s.logger.WarnContext(ctx, "synchronous outbox drain failed, background drainer will retry",
			slog.Any("error", err))
	}
}

// createDeliveryUpdateEvent writes the DELIVERY_UPDATE outbox row mirroring
// a status change, in the same transaction as the change itself.
func createDeliveryUpdateEvent(ctx context.Context, outboxRepo repository.OutboxRepository, delivery *entity.Delivery, status entity.DeliveryStatus, message string) error {
	event := service.DeliveryEvent{
		Kind:           entity.EventKindDeliveryUpdate,
		DeliveryID:     delivery.ID.String(),
		AnnouncementID: delivery.AnnouncementID.String(),
		Status:         string(status),
		Progress:       status.Progress(),
		Message:        message,
	}
	if delivery.DelivererID != nil {
		event.RecipientIDs = append(event.RecipientIDs, delivery.DelivererID.String())
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal delivery event")
	}

	return outboxRepo.CreateOutboxEvent(ctx, &entity.OutboxEvent{
		ID:        uuid.New(),
		Kind:      entity.EventKindDeliveryUpdate,
		Channel:   deliveryChannel(delivery.ID),
		Payload:   payload,
		Status:    entity.OutboxStatusPending,
		CreatedAt: time.Now(),
	})
}

// deliveryChannel is the dispatcher channel for one delivery's updates.
func deliveryChannel(deliveryID uuid.UUID) string {
	return "delivery." + deliveryID.String()
}
