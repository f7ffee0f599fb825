package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. Amounts are stored in pesewas.
type PaymentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount     int64     `gorm:"not null"`
	Method     string    `gorm:"type:varchar(10);not null"`
	Reference  string    `gorm:"type:varchar(50);unique;not null"`
	RecordedBy uuid.UUID `gorm:"type:uuid;not null"`
	PaidAt     time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
