package usecase

import (
	"context"
	"time"

	"drugweb/internal/domain/entity"
)

// SubmitRequestInput defines a customer's ask for a medicine the catalog
// does not carry.
type SubmitRequestInput struct {
	CustomerID   string
	MedicineName string
	ExpectedDate time.Time
}

// DecideRequestInput defines an admin triage decision. Decisions address
// requests by the (customer, medicine name) pair and may overwrite an
// earlier decision.
type DecideRequestInput struct {
	CustomerID   string
	MedicineName string
	Status       entity.RequestStatus
}

// RequestUsecase defines the interface for the medicine request triage flow.
type RequestUsecase interface {
	Submit(ctx context.Context, input *SubmitRequestInput) (*entity.CustomerRequest, error)
	Decide(ctx context.Context, input *DecideRequestInput) error
	ListAll(ctx context.Context) ([]*entity.CustomerRequest, error)
	ListMine(ctx context.Context, customerID string) ([]*entity.CustomerRequest, error)
}
