package usecase

import (
	"context"

	"drugweb/internal/domain/entity"
)

// NotificationUsecase defines the interface for the per-customer message log.
// Fetching through either method marks the customer's notifications read.
type NotificationUsecase interface {
	// ListAll returns every notification of the customer and marks them read.
	ListAll(ctx context.Context, customerID string) ([]*entity.Notification, error)

	// ListUnread returns the notifications the customer has not seen yet and
	// marks them read.
	ListUnread(ctx context.Context, customerID string) ([]*entity.Notification, error)
}
