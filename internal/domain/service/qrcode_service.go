package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateValidationQR generates a QR code image embedding a delivery's
	// validation code, shown to the recipient for handoff confirmation.
	GenerateValidationQR(deliveryID uuid.UUID, validationCode string) ([]byte, error)

	// ParseValidationQR parses QR code data and returns the delivery ID and validation code
	ParseValidationQR(qrData string) (uuid.UUID, string, error)
}
