// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"drugweb/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user together with its attached role profiles.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their business ID, preloading role profiles.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email, preloading role profiles.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// NextCustomerID allocates the next customer ID in the CMnnn sequence.
	NextCustomerID(ctx context.Context) (string, error)

	// ListDeliveryStaff returns every user holding the delivery role.
	ListDeliveryStaff(ctx context.Context) ([]*entity.User, error)
}
