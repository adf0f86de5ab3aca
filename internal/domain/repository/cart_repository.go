package repository

import (
	"context"
	"errors"

	"drugweb/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ErrCartItemNotFound is returned when a cart line is missing or not owned
// by the calling customer.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the interface for cart line persistence. A customer
// owns at most one line per medicine.
type CartRepository interface {
	// FindLine retrieves the customer's line for a medicine, if any.
	FindLine(ctx context.Context, customerID, medicineCode string) (*entity.CartItem, error)

	// FindLineByID retrieves a line by its ID, scoped to the owning customer.
	FindLineByID(ctx context.Context, customerID string, cartID int64) (*entity.CartItem, error)

	// Create inserts a new cart line.
	Create(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets a line's quantity and total price.
	UpdateQuantity(ctx context.Context, customerID string, cartID int64, quantity int, total decimal.Decimal) error

	// Delete removes a line. Deleting an absent line is not an error.
	Delete(ctx context.Context, customerID string, cartID int64) error

	// ListByCustomer returns the customer's lines joined with the current
	// medicine name and price, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.CartItem, error)

	// ListForUpdate returns the customer's lines under an exclusive row lock,
	// holding off concurrent checkouts for the same customer until commit.
	ListForUpdate(ctx context.Context, customerID string) ([]*entity.CartItem, error)

	// TotalValue sums total_price over the customer's lines; zero when empty.
	TotalValue(ctx context.Context, customerID string) (decimal.Decimal, error)

	// Clear deletes every line belonging to the customer.
	Clear(ctx context.Context, customerID string) error
}
