// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"smartcity/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new account.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for an account holder to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's sanitized view.
type SignupOutput struct {
	Account *entity.AccountView
}

// LoginOutput returns the authenticated account's sanitized view.
type LoginOutput struct {
	Account *entity.AccountView
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
