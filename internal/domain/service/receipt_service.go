package service

import "github.com/google/uuid"

// ReceiptQRService generates scannable verification codes for payment receipts.
type ReceiptQRService interface {
	// GenerateReceiptQR renders a PNG QR code encoding the payment id and
	// receipt reference, for printing on receipts.
	GenerateReceiptQR(paymentID uuid.UUID, reference string) ([]byte, error)

	// ParseReceiptQR decodes QR payload data back into the payment id and reference.
	ParseReceiptQR(qrData string) (uuid.UUID, string, error)
}
