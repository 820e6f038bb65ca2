package policy

import "ecodeli/internal/domain/entity"

// Operation names a guarded action on the lifecycle core. The state machine
// and the cancellation engine consult the same table instead of scattering
// role checks across handlers.
type Operation string

const (
	// OperationAdvanceDelivery covers PENDING through IN_TRANSIT→DELIVERED.
	// Ownership (actor is the assigned deliverer) is checked by the caller.
	OperationAdvanceDelivery Operation = "delivery.advance"
	// OperationCompleteDelivery is the DELIVERED→COMPLETED settlement step.
	OperationCompleteDelivery Operation = "delivery.complete"
	// OperationCancelDelivery moves a delivery to CANCELLED.
	OperationCancelDelivery Operation = "delivery.cancel"
	// OperationCancelAnnouncement cancels the owning announcement.
	OperationCancelAnnouncement Operation = "announcement.cancel"
	// OperationRecordTracking appends a tracking entry outside a transition.
	OperationRecordTracking Operation = "tracking.record"
)

var allowedRoles = map[Operation]map[string]bool{
	OperationAdvanceDelivery: {
		entity.RoleDeliverer: true,
	},
	OperationCompleteDelivery: {
		entity.RoleSystem: true,
		entity.RoleAdmin:  true,
	},
	OperationCancelDelivery: {
		entity.RoleClient: true,
		entity.RoleAdmin:  true,
	},
	OperationCancelAnnouncement: {
		entity.RoleClient: true,
		entity.RoleAdmin:  true,
	},
	OperationRecordTracking: {
		entity.RoleDeliverer: true,
		entity.RoleAdmin:     true,
	},
}

// Allowed reports whether the role may perform the operation.
// Unknown roles and unknown operations are both denied.
func Allowed(role string, op Operation) bool {
	return allowedRoles[op][role]
}

// OperationForTransition maps a requested status transition to the
// operation guarding it.
func OperationForTransition(to entity.DeliveryStatus) Operation {
	switch to {
	case entity.DeliveryStatusCancelled:
		return OperationCancelDelivery
	case entity.DeliveryStatusCompleted:
		return OperationCompleteDelivery
	default:
		return OperationAdvanceDelivery
	}
}
