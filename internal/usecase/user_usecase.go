// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"drugweb/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterCustomerInput defines the data required to register a new customer.
// Admin and delivery accounts are provisioned by the operator, not through
// this flow.
type RegisterCustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Address   string
	Phone     string
}

// LoginInput defines the data required for a user to log in. Role selects
// which portal the user is entering; the login fails when the account does
// not hold it.
type LoginInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// ProfileOutput returns the user together with their point balance.
type ProfileOutput struct {
	User   *entity.User
	Points int
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Profile(ctx context.Context, userID string) (*ProfileOutput, error)
}
