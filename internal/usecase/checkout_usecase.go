package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutInput defines the data required to convert a cart into a payment.
type CheckoutInput struct {
	CustomerID  string
	PaymentType string
}

// CheckoutOutput reports the durable results of a committed checkout.
type CheckoutOutput struct {
	PaymentID    string
	Amount       decimal.Decimal
	PointsEarned int
}

// CheckoutUsecase defines the interface for the checkout workflow. A checkout
// either commits the payment, the loyalty points and the notification
// together, or leaves no trace.
type CheckoutUsecase interface {
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)
}
