package qrcode

import (
	"encoding/json"
	"fmt"

	"ecodeli/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const validationQRType = "delivery_validation"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	DeliveryID     string `json:"delivery_id"`
	ValidationCode string `json:"validation_code"`
	Type           string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateValidationQR generates a QR code image embedding a delivery's
// validation code, shown to the recipient for handoff confirmation.
func (s *qrcodeService) GenerateValidationQR(deliveryID uuid.UUID, validationCode string) ([]byte, error) {
	data := QRCodeData{
		DeliveryID:     deliveryID.String(),
		ValidationCode: validationCode,
		Type:           validationQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseValidationQR parses QR code data and returns the delivery ID and validation code
func (s *qrcodeService) ParseValidationQR(qrData string) (uuid.UUID, string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != validationQRType {
		return uuid.Nil, "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	deliveryID, err := uuid.Parse(data.DeliveryID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse delivery ID: %w", err)
	}

	return deliveryID, data.ValidationCode, nil
}
