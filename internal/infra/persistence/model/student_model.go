package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel mirrors the 'students' table. Deleted students are kept as
// soft-deleted rows so their payment history stays auditable.
type StudentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IndexNumber  string    `gorm:"type:varchar(20);unique;not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(20)"`
	Programme    string    `gorm:"type:varchar(100);not null"`
	Level        int       `gorm:"not null"`
	FeeDue       int64     `gorm:"not null;default:0"`
	RegisteredBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Payments []PaymentModel `gorm:"foreignKey:StudentID"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
