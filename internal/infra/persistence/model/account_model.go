// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username         string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	FullName         string    `gorm:"type:varchar(100);not null"`
	Role             string    `gorm:"type:varchar(20);not null"`
	IsActive         bool      `gorm:"not null;default:true"`
	FailedLoginCount int       `gorm:"not null;default:0"`
	LockedUntil      *time.Time
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Students []StudentModel `gorm:"foreignKey:RegisteredBy"`
	Payments []PaymentModel `gorm:"foreignKey:RecordedBy"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
