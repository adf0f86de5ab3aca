package repository

import (
	"context"
	"errors"

	"drugweb/internal/domain/entity"
)

// ErrRequestNotFound is returned when no request matches the
// (customer, medicine name) pair.
var ErrRequestNotFound = errors.New("request not found")

// RequestRepository defines the interface for customer medicine requests.
type RequestRepository interface {
	// Create persists a new request; callers set status Pending.
	Create(ctx context.Context, request *entity.CustomerRequest) error

	// FindByCustomerAndName retrieves a request by its triage key.
	FindByCustomerAndName(ctx context.Context, customerID, medicineName string) (*entity.CustomerRequest, error)

	// UpdateStatus overwrites the status of every request matching the pair.
	UpdateStatus(ctx context.Context, customerID, medicineName string, status entity.RequestStatus) error

	// ListAll returns every request with customer names for admin triage.
	ListAll(ctx context.Context) ([]*entity.CustomerRequest, error)

	// ListByCustomer returns a customer's own requests.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.CustomerRequest, error)
}
