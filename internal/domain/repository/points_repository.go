package repository

import (
	"context"

	"drugweb/internal/domain/entity"
)

// PointsRepository defines the interface for the loyalty points ledger.
// Balances move only through IncrementBalance so concurrent checkouts for the
// same customer cannot lose updates.
type PointsRepository interface {
	// IncrementBalance atomically adds delta to the customer's balance
	// (UPDATE ... SET points = points + delta).
	IncrementBalance(ctx context.Context, customerID string, delta int) error

	// Balance returns the customer's current point balance.
	Balance(ctx context.Context, customerID string) (int, error)

	// AppendHistory writes one append-only ledger entry.
	AppendHistory(ctx context.Context, entry *entity.PointsEntry) error

	// ListHistory returns the customer's ledger entries, newest first.
	ListHistory(ctx context.Context, customerID string) ([]*entity.PointsEntry, error)
}
