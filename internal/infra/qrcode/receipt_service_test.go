package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReceiptQRService_GenerateAndParse(t *testing.T) {
	svc := NewReceiptQRService(256, "M")

	paymentID := uuid.New()

	png, err := svc.GenerateReceiptQR(paymentID, "RCP-2024-000123")
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	payload, err := json.Marshal(receiptPayload{
		PaymentID: paymentID.String(),
		Reference: "RCP-2024-000123",
		Type:      receiptPayloadType,
	})
	assert.NoError(t, err)

	gotID, gotRef, err := svc.ParseReceiptQR(string(payload))
	assert.NoError(t, err)
	assert.Equal(t, paymentID, gotID)
	assert.Equal(t, "RCP-2024-000123", gotRef)
}

func TestReceiptQRService_ParseRejectsWrongType(t *testing.T) {
	svc := NewReceiptQRService(256, "M")

	payload, err := json.Marshal(receiptPayload{
		PaymentID: uuid.New().String(),
		Reference: "RCP-2024-000123",
		Type:      "subscription",
	})
	assert.NoError(t, err)

	_, _, err = svc.ParseReceiptQR(string(payload))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestReceiptQRService_ParseRejectsGarbage(t *testing.T) {
	svc := NewReceiptQRService(256, "M")

	_, _, err := svc.ParseReceiptQR("not json at all")
	assert.Error(t, err)

	payload, err := json.Marshal(receiptPayload{
		PaymentID: "not-a-uuid",
		Reference: "RCP-2024-000123",
		Type:      receiptPayloadType,
	})
	assert.NoError(t, err)

	_, _, err = svc.ParseReceiptQR(string(payload))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse payment ID")
}

func TestNewReceiptQRService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc, ok := NewReceiptQRService(128, "X").(*receiptQRService)
	assert.True(t, ok)
	assert.Equal(t, 128, svc.size)
}
