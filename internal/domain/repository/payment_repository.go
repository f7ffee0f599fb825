package repository

import (
	"context"
	"errors"

	"compssa/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is a domain-specific error returned when a payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the standard operations for payment persistence.
type PaymentRepository interface {
	// FindByID retrieves a single payment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// Create persists a new payment entity to the storage.
	Create(ctx context.Context, payment *entity.Payment) error

	// ListByStudentID retrieves all payments for a student, newest first.
	ListByStudentID(ctx context.Context, studentID uuid.UUID) ([]*entity.Payment, error)

	// ListRecent retrieves the most recently recorded payments across all students.
	ListRecent(ctx context.Context, limit int) ([]*entity.Payment, error)

	// SumByStudentID returns the total amount a student has paid, in pesewas.
	SumByStudentID(ctx context.Context, studentID uuid.UUID) (int64, error)

	// TotalCollected returns the sum of all recorded payments, in pesewas.
	TotalCollected(ctx context.Context) (int64, error)

	// Count returns the number of recorded payments.
	Count(ctx context.Context) (int64, error)
}
