package policy

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ecodeli/internal/domain/entity"
)

func quoteAt(t *testing.T, status entity.AnnouncementStatus, total string, elapsed time.Duration) CancellationQuote {
	t.Helper()
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return QuoteCancellation(status, createdAt, decimal.RequireFromString(total), createdAt.Add(elapsed))
}

func TestQuoteCancellation_MatchedOutsideGrace(t *testing.T) {
	quote := quoteAt(t, entity.AnnouncementStatusMatched, "100.00", 2*time.Hour)

	assert.True(t, quote.Cancellable)
	assert.False(t, quote.WithinGrace)
	assert.Equal(t, "15", quote.VariableFee.String())
	assert.Equal(t, "2.5", quote.ProcessingFee.String())
	assert.Equal(t, "82.5", quote.RefundAmount.String())
	assert.True(t, quote.WillRefund)
}

func TestQuoteCancellation_ActiveOutsideGrace(t *testing.T) {
	quote := quoteAt(t, entity.AnnouncementStatusActive, "40.00", time.Hour)

	assert.True(t, quote.Cancellable)
	assert.Equal(t, "2", quote.VariableFee.String())
	assert.Equal(t, "2.5", quote.ProcessingFee.String())
	assert.Equal(t, "35.5", quote.RefundAmount.String())
	assert.True(t, quote.WillRefund)
}

func TestQuoteCancellation_DraftInGrace(t *testing.T) {
	quote := quoteAt(t, entity.AnnouncementStatusDraft, "50.00", 5*time.Minute)

	assert.True(t, quote.Cancellable)
	assert.True(t, quote.WithinGrace)
	assert.True(t, quote.VariableFee.IsZero())
	assert.True(t, quote.ProcessingFee.IsZero())
	// A draft never held a payment, so even a full computed refund is not issued.
	assert.False(t, quote.WillRefund)
}

func TestQuoteCancellation_DraftNeverRefundsOutsideGrace(t *testing.T) {
	quote := quoteAt(t, entity.AnnouncementStatusDraft, "50.00", time.Hour)

	assert.True(t, quote.Cancellable)
	assert.True(t, quote.VariableFee.IsZero(), "draft has no variable fee rate")
	assert.Equal(t, "2.5", quote.ProcessingFee.String())
	assert.False(t, quote.WillRefund)
}

func TestQuoteCancellation_GraceBoundaryInclusive(t *testing.T) {
	inGrace := quoteAt(t, entity.AnnouncementStatusActive, "100.00", 30*time.Minute)
	assert.True(t, inGrace.WithinGrace, "elapsed == 30m is still within grace")
	assert.True(t, inGrace.TotalFees.IsZero())
	assert.Equal(t, "100", inGrace.RefundAmount.String())

	justInside := quoteAt(t, entity.AnnouncementStatusActive, "100.00", 30*time.Minute-time.Second)
	assert.True(t, justInside.WithinGrace)

	justOutside := quoteAt(t, entity.AnnouncementStatusActive, "100.00", 30*time.Minute+time.Second)
	assert.False(t, justOutside.WithinGrace)
	assert.Equal(t, "7.5", justOutside.TotalFees.String())
}

func TestQuoteCancellation_RefundNeverNegative(t *testing.T) {
	quote := quoteAt(t, entity.AnnouncementStatusMatched, "2.00", time.Hour)

	assert.True(t, quote.RefundAmount.IsZero())
	assert.False(t, quote.WillRefund)
}

func TestQuoteCancellation_NoLeakage(t *testing.T) {
	// Fees plus refund must reconstruct the original amount to within a cent.
	amounts := []string{"100.00", "19.99", "3.33", "250.01"}
	for _, amount := range amounts {
		total := decimal.RequireFromString(amount)
		quote := quoteAt(t, entity.AnnouncementStatusMatched, amount, time.Hour)
		if quote.RefundAmount.IsZero() {
			continue
		}
		diff := total.Sub(quote.TotalFees.Add(quote.RefundAmount)).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")), "leakage for %s: %s", amount, diff)
	}
}

func TestQuoteCancellation_TerminalStatusesRejected(t *testing.T) {
	cases := map[entity.AnnouncementStatus]string{
		entity.AnnouncementStatusInProgress: "en cours",
		entity.AnnouncementStatusCompleted:  "terminée",
		entity.AnnouncementStatusCancelled:  "annulée",
	}
	for status, fragment := range cases {
		quote := quoteAt(t, status, "100.00", time.Minute)
		assert.False(t, quote.Cancellable, "status %s", status)
		assert.Contains(t, quote.Reason, fragment)
		assert.False(t, quote.WillRefund)
	}
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed(entity.RoleDeliverer, OperationAdvanceDelivery))
	assert.False(t, Allowed(entity.RoleClient, OperationAdvanceDelivery))

	assert.True(t, Allowed(entity.RoleSystem, OperationCompleteDelivery))
	assert.True(t, Allowed(entity.RoleAdmin, OperationCompleteDelivery))
	assert.False(t, Allowed(entity.RoleDeliverer, OperationCompleteDelivery))

	assert.True(t, Allowed(entity.RoleClient, OperationCancelAnnouncement))
	assert.True(t, Allowed(entity.RoleAdmin, OperationCancelDelivery))
	assert.False(t, Allowed(entity.RoleDeliverer, OperationCancelDelivery))

	assert.False(t, Allowed("unknown", OperationAdvanceDelivery))
	assert.False(t, Allowed(entity.RoleAdmin, Operation("unknown")))
}

func TestOperationForTransition(t *testing.T) {
	assert.Equal(t, OperationCancelDelivery, OperationForTransition(entity.DeliveryStatusCancelled))
	assert.Equal(t, OperationCompleteDelivery, OperationForTransition(entity.DeliveryStatusCompleted))
	assert.Equal(t, OperationAdvanceDelivery, OperationForTransition(entity.DeliveryStatusDelivered))
	assert.Equal(t, OperationAdvanceDelivery, OperationForTransition(entity.DeliveryStatusAccepted))
}
