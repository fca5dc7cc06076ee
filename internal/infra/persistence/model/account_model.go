package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
// Username and email each carry their own named unique index; the constraint
// name is how a duplicate insert is attributed to the right key.
type AccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_accounts_username"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_email"`
	CredentialHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
