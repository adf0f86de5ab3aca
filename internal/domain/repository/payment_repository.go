package repository

import (
	"context"
	"errors"
	"time"

	"drugweb/internal/domain/entity"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment ID is unknown.
	ErrPaymentNotFound = errors.New("payment not found")
)

// PaymentRepository defines the interface for payment persistence. Amount is
// written once by checkout; the delivery fields mutate through the dedicated
// update methods only.
type PaymentRepository interface {
	// Create persists a new payment record.
	Create(ctx context.Context, payment *entity.Payment) error

	// Exists reports whether a payment with the given ID already exists.
	Exists(ctx context.Context, paymentID string) (bool, error)

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, paymentID string) (*entity.Payment, error)

	// FindAssigned retrieves a payment only when it is currently assigned to
	// the given courier.
	FindAssigned(ctx context.Context, paymentID, staffID string) (*entity.Payment, error)

	// SetAssignee sets the courier on a payment without touching its status.
	SetAssignee(ctx context.Context, paymentID, staffID string) error

	// Accept marks the payment accepted for delivery on the given date.
	Accept(ctx context.Context, paymentID string, deliveryDate time.Time) error

	// Decline clears the assignee and resets the status to Pending Assignment.
	Decline(ctx context.Context, paymentID string) error

	// MarkDelivered moves the payment to its terminal Delivered status.
	MarkDelivered(ctx context.Context, paymentID string) error

	// ListAll returns every payment with customer and courier info, newest first.
	ListAll(ctx context.Context) ([]*entity.PaymentSummary, error)

	// ListByStaff returns payments assigned to a courier, newest first.
	ListByStaff(ctx context.Context, staffID string) ([]*entity.PaymentSummary, error)

	// ListByCustomer returns a customer's payments, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Payment, error)
}
