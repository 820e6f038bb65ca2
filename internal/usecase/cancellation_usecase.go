package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CancellationQuoteView is the externally visible outcome of the
// cancellation policy for an announcement.
type CancellationQuoteView struct {
	Cancellable   bool            `json:"cancellable"`
	Reason        string          `json:"reason,omitempty"`
	WithinGrace   bool            `json:"within_grace"`
	VariableFee   decimal.Decimal `json:"variable_fee"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	TotalFees     decimal.Decimal `json:"total_fees"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
	WillRefund    bool            `json:"will_refund"`
}

// CancellationUsecase defines the interface for announcement cancellation use cases
type CancellationUsecase interface {
	// QuoteCancellation previews fees and refund without mutating anything.
	QuoteCancellation(ctx context.Context, announcementID uuid.UUID) (*CancellationQuoteView, error)

	// CancelAnnouncement executes a cancellation: authorization, policy
	// evaluation, status write plus audit record in one transaction, then a
	// refund instruction when the policy grants one.
	CancelAnnouncement(ctx context.Context, announcementID uuid.UUID, actor Actor, reason string) (*CancellationQuoteView, error)
}
