package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks a payment through the delivery workflow.
type PaymentStatus string

const (
	// StatusAssigned is the initial status of every payment.
	StatusAssigned PaymentStatus = "Assigned"
	// StatusPendingAssignment marks a payment whose courier declined it.
	StatusPendingAssignment PaymentStatus = "Pending Assignment"
	// StatusAcceptedForDelivery marks a payment the assigned courier accepted.
	StatusAcceptedForDelivery PaymentStatus = "Accepted for Delivery"
	// StatusDelivered is terminal.
	StatusDelivered PaymentStatus = "Delivered"
)

// String returns the string representation of the status.
func (s PaymentStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the delivery workflow permits moving to next.
// Delivered is terminal; Pending Assignment cycles back through reassignment.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case StatusAssigned:
		return next == StatusAcceptedForDelivery || next == StatusPendingAssignment
	case StatusAcceptedForDelivery:
		return next == StatusDelivered
	case StatusPendingAssignment:
		return next == StatusAcceptedForDelivery || next == StatusPendingAssignment
	case StatusDelivered:
		return false
	default:
		return false
	}
}

// Payment is the durable record produced by a successful checkout.
// Amount is write-once; the delivery fields are owned by the delivery
// assignment workflow after creation.
type Payment struct {
	PaymentID       string          // PAY + 6 or 8 ASCII digits, globally unique.
	CustomerID      string          // The purchasing customer.
	Amount          decimal.Decimal // Cart total at commit time, immutable.
	PaymentType     string          // e.g. "cash", "card".
	DeliveryStaffID *string         // Assigned courier, nil until assignment.
	Status          PaymentStatus
	DeliveryDate    *time.Time // Set when the courier accepts.
	CreatedAt       time.Time
}

// PaymentSummary is a payment joined with the people around it, used by the
// admin payment list and the courier dashboard.
type PaymentSummary struct {
	Payment
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	StaffName       string // Empty when unassigned.
	StaffPhone      string
}
