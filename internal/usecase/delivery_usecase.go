package usecase

import (
	"context"
	"time"

	"drugweb/internal/domain/entity"
)

// DeliveryAction is the courier's response to an assigned payment.
type DeliveryAction string

const (
	// ActionAccept commits the courier to the delivery on a given date.
	ActionAccept DeliveryAction = "accept"
	// ActionDecline returns the payment to the assignment pool.
	ActionDecline DeliveryAction = "decline"
	// ActionDelivered closes out an accepted delivery.
	ActionDelivered DeliveryAction = "delivered"
)

// IsValid checks if the DeliveryAction is a known value.
func (a DeliveryAction) IsValid() bool {
	switch a {
	case ActionAccept, ActionDecline, ActionDelivered:
		return true
	default:
		return false
	}
}

// AssignDeliveryInput defines the data an admin submits to route a payment
// to a courier.
type AssignDeliveryInput struct {
	PaymentID string
	StaffID   string
}

// AssignDeliveryOutput names the courier so the admin view can confirm the
// routing.
type AssignDeliveryOutput struct {
	PaymentID string
	StaffID   string
	StaffName string
}

// RespondDeliveryInput defines a courier's response to one of their
// assignments. DeliveryDate is required for accept only.
type RespondDeliveryInput struct {
	PaymentID    string
	StaffID      string
	Action       DeliveryAction
	DeliveryDate time.Time
}

// DeliveryUsecase defines the interface for the delivery assignment workflow.
type DeliveryUsecase interface {
	Assign(ctx context.Context, input *AssignDeliveryInput) (*AssignDeliveryOutput, error)
	Respond(ctx context.Context, input *RespondDeliveryInput) error
	ListAssignments(ctx context.Context, staffID string) ([]*entity.PaymentSummary, error)
	ListAllPayments(ctx context.Context) ([]*entity.PaymentSummary, error)
	ListCustomerPayments(ctx context.Context, customerID string) ([]*entity.Payment, error)
	ListStaff(ctx context.Context) ([]*entity.User, error)
}
