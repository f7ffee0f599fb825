package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod represents how a fee payment was made.
type PaymentMethod string

const (
	// PaymentMethodCash indicates a cash payment taken at the desk.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodMomo indicates a mobile-money transfer.
	PaymentMethodMomo PaymentMethod = "momo"
	// PaymentMethodBank indicates a bank deposit or transfer.
	PaymentMethodBank PaymentMethod = "bank"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodMomo, PaymentMethodBank:
		return true
	default:
		return false
	}
}

// Payment records a single fee payment made by a student. Amounts are held in
// pesewas to avoid floating-point arithmetic on money.
type Payment struct {
	ID         uuid.UUID // The unique identifier for this payment record.
	StudentID  uuid.UUID // The student this payment belongs to.
	Amount     int64     // Amount paid, in pesewas; always positive.
	Method     PaymentMethod
	Reference  string    // Receipt reference, unique per payment.
	RecordedBy uuid.UUID // The account that recorded this payment.
	PaidAt     time.Time // When the payment was made.
	CreatedAt  time.Time // When the record was created.
}
