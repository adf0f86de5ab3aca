package usecase

import (
	"context"

	"drugweb/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// AddToCartInput defines the data required to put a medicine in the cart.
// Adding a medicine already present increments the existing line instead of
// creating a second one.
type AddToCartInput struct {
	CustomerID   string
	MedicineCode string
	Quantity     int
}

// UpdateCartLineInput defines the data required to set a line's quantity.
type UpdateCartLineInput struct {
	CustomerID string
	CartID     int64
	Quantity   int
}

// RemoveCartLineInput defines the data required to drop a line from the cart.
type RemoveCartLineInput struct {
	CustomerID string
	CartID     int64
}

// CartView returns the customer's cart lines together with the running total.
type CartView struct {
	Items []*entity.CartItem
	Total decimal.Decimal
}

// CartUsecase defines the interface for cart ledger operations.
type CartUsecase interface {
	AddToCart(ctx context.Context, input *AddToCartInput) (*entity.CartItem, error)
	UpdateQuantity(ctx context.Context, input *UpdateCartLineInput) (*entity.CartItem, error)
	RemoveLine(ctx context.Context, input *RemoveCartLineInput) error
	ViewCart(ctx context.Context, customerID string) (*CartView, error)
}
