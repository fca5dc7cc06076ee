// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity record created by signup. Username and email are
// unique across all accounts; CredentialHash holds the salted bcrypt hash of
// the signup password and must never cross the service boundary.
type Account struct {
	ID             uuid.UUID // Assigned by the store on first insert, immutable afterwards.
	Username       string
	Email          string
	CredentialHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountView is the sanitized representation of an Account, the only form
// ever returned to callers. It is constructed without the credential hash, so
// a view can never leak it; sanitization is a property of the type, not a
// mutation of the stored record.
type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAccountView builds the sanitized view of an account.
func NewAccountView(account *Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}
