package entity

import "time"

// PointsTransactionType categorizes a points ledger entry.
const (
	// Points earned through a checkout purchase.
	PointsTransactionEarned = "earned"
)

// PointsEntry is one append-only row of the loyalty points ledger. The sum of
// a customer's entries backs their CustomerProfile.Points balance.
type PointsEntry struct {
	HistoryID       int64
	CustomerID      string
	PointsEarned    int    // Always positive; zero-point checkouts write no entry.
	TransactionType string // e.g. "earned".
	PaymentID       string // Back-reference to the payment that produced the entry.
	Description     string
	CreatedAt       time.Time
}
