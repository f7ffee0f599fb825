package qrcode

import (
	"encoding/json"
	"fmt"

	"compssa/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type receiptQRService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// receiptPayload is the JSON document encoded into the QR image.
type receiptPayload struct {
	PaymentID string `json:"payment_id"`
	Reference string `json:"reference"`
	Type      string `json:"type"`
}

const receiptPayloadType = "payment_receipt"

// NewReceiptQRService creates a new receipt QR code service instance
func NewReceiptQRService(size int, errorCorrectionLevel string) service.ReceiptQRService {
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

	return &receiptQRService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReceiptQR generates a PNG QR code for a payment receipt
func (s *receiptQRService) GenerateReceiptQR(paymentID uuid.UUID, reference string) ([]byte, error) {
	data := receiptPayload{
		PaymentID: paymentID.String(),
		Reference: reference,
		Type:      receiptPayloadType,
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

// ParseReceiptQR parses QR payload data and returns the payment ID and reference
func (s *receiptQRService) ParseReceiptQR(qrData string) (uuid.UUID, string, error) {
	var data receiptPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != receiptPayloadType {
		return uuid.Nil, "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	paymentID, err := uuid.Parse(data.PaymentID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse payment ID: %w", err)
	}

	return paymentID, data.Reference, nil
}
