package usecase

import (
	"context"

	"drugweb/internal/domain/entity"
)

// PointsView returns the customer's balance together with the ledger that
// backs it.
type PointsView struct {
	Balance int
	History []*entity.PointsEntry
}

// PointsUsecase defines the interface for loyalty point reads. Earning goes
// exclusively through checkout.
type PointsUsecase interface {
	View(ctx context.Context, customerID string) (*PointsView, error)
}
