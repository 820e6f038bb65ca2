package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateAndParseRoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")

	deliveryID := uuid.New()

	png, err := service.GenerateValidationQR(deliveryID, "X7K2M9")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	parsedID, code, err := service.ParseValidationQR(
		`{"delivery_id":"` + deliveryID.String() + `","validation_code":"X7K2M9","type":"delivery_validation"}`)
	require.NoError(t, err)
	assert.Equal(t, deliveryID, parsedID)
	assert.Equal(t, "X7K2M9", code)
}

func TestQRCodeService_ParseRejectsWrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, _, err := service.ParseValidationQR(
		`{"delivery_id":"` + uuid.New().String() + `","validation_code":"X7K2M9","type":"subscription"}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseRejectsMalformedData(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, _, err := service.ParseValidationQR(`{not json`)

	require.Error(t, err)
}

func TestQRCodeService_ParseRejectsBadDeliveryID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, _, err := service.ParseValidationQR(
		`{"delivery_id":"not-a-uuid","validation_code":"X7K2M9","type":"delivery_validation"}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse delivery ID")
}
