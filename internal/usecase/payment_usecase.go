package usecase

import (
	"context"
	"time"

	"compssa/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordPaymentInput defines the data required to record a fee payment.
type RecordPaymentInput struct {
	StudentID  uuid.UUID
	Amount     int64 // In pesewas; must be positive.
	Method     entity.PaymentMethod
	Reference  string
	RecordedBy uuid.UUID
	PaidAt     *time.Time // Defaults to now when nil.
}

// PaymentUsecase defines the interface for payment-related business operations.
type PaymentUsecase interface {
	// RecordPayment records a fee payment for a student. The student row is
	// locked for the duration of the transaction so that concurrent payments
	// cannot jointly exceed the outstanding balance.
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*entity.Payment, error)

	// ListStudentPayments returns all payments for one student, newest first.
	ListStudentPayments(ctx context.Context, studentID uuid.UUID) ([]*entity.Payment, error)

	// ListRecentPayments returns the most recently recorded payments.
	ListRecentPayments(ctx context.Context, limit int) ([]*entity.Payment, error)

	// GetReceiptQR renders the PNG verification code for a payment receipt.
	GetReceiptQR(ctx context.Context, paymentID uuid.UUID) ([]byte, error)
}
