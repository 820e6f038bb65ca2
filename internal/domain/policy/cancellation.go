// Package policy holds the pure decision rules of the marketplace:
// the cancellation fee/refund computation and the role authorization
// table. Nothing here touches storage or the clock; callers pass time in.
package policy

import (
	"time"

	"github.com/shopspring/decimal"

	"ecodeli/internal/domain/entity"
)

// CancellationGracePeriod is the window after creation during which
// cancelling an announcement is penalty free. The boundary is inclusive.
const CancellationGracePeriod = 30 * time.Minute

var (
	processingFee  = decimal.RequireFromString("2.50")
	feeRateActive  = decimal.RequireFromString("0.05")
	feeRateMatched = decimal.RequireFromString("0.15")
)

// cancellationBlockedReasons maps non-cancellable statuses to the
// user-facing reason returned with CancellationNotAllowed.
var cancellationBlockedReasons = map[entity.AnnouncementStatus]string{
	entity.AnnouncementStatusInProgress: "Livraison déjà en cours, veuillez contacter le support",
	entity.AnnouncementStatusCompleted:  "Annonce déjà terminée",
	entity.AnnouncementStatusCancelled:  "Annonce déjà annulée",
}

// CancellationQuote is the outcome of evaluating the cancellation policy
// for an announcement at a given instant. It is computed identically for
// the read-only preview and the mutating cancel path.
type CancellationQuote struct {
	Cancellable   bool
	Reason        string
	WithinGrace   bool
	VariableFee   decimal.Decimal
	ProcessingFee decimal.Decimal
	TotalFees     decimal.Decimal
	RefundAmount  decimal.Decimal
	WillRefund    bool
}

// QuoteCancellation computes fees and refund for cancelling an announcement.
//
// Within the grace period no fees apply and the full amount is refunded.
// Outside it, a variable fee keyed by status (5% for ACTIVE, 15% for MATCHED
// since a deliverer is already committed) plus a flat processing fee apply.
// DRAFT announcements never held a payment, so they are cancellable but
// never refunded.
func QuoteCancellation(status entity.AnnouncementStatus, createdAt time.Time, totalAmount decimal.Decimal, now time.Time) CancellationQuote {
	if reason, blocked := cancellationBlockedReasons[status]; blocked {
		return CancellationQuote{
			Reason:        reason,
			VariableFee:   decimal.Zero,
			ProcessingFee: decimal.Zero,
			TotalFees:     decimal.Zero,
			RefundAmount:  decimal.Zero,
		}
	}

	quote := CancellationQuote{
		Cancellable: true,
		WithinGrace: now.Sub(createdAt) <= CancellationGracePeriod,
	}

	variable := decimal.Zero
	processing := decimal.Zero
	if !quote.WithinGrace {
		switch status {
		case entity.AnnouncementStatusActive:
			variable = totalAmount.Mul(feeRateActive)
		case entity.AnnouncementStatusMatched:
			variable = totalAmount.Mul(feeRateMatched)
		}
		processing = processingFee
	}

	refund := totalAmount.Sub(variable).Sub(processing)
	if refund.IsNegative() {
		refund = decimal.Zero
	}

	quote.VariableFee = variable.Round(2)
	quote.ProcessingFee = processing
	quote.TotalFees = variable.Add(processing).Round(2)
	quote.RefundAmount = refund.Round(2)
	quote.WillRefund = status != entity.AnnouncementStatusDraft && quote.RefundAmount.IsPositive()

	return quote
}
