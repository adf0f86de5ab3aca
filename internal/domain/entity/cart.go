package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a customer's cart. A customer holds at most one
// line per medicine; adding the same medicine again increments the quantity.
type CartItem struct {
	CartID       int64           // Surrogate line identifier.
	CustomerID   string          // Owning customer.
	MedicineCode string          // Catalog code of the medicine.
	MedicineName string          // Joined from the catalog for display.
	Quantity     int             // Units requested, at least 1.
	UnitPrice    decimal.Decimal // Price snapshot taken when the line was written.
	TotalPrice   decimal.Decimal // Quantity x UnitPrice, recomputed on every write.
	AddedAt      time.Time
}
