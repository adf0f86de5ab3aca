package repository

import (
	"context"

	"drugweb/internal/domain/entity"
)

// NotificationRepository defines the interface for the append-only
// per-customer notification log.
type NotificationRepository interface {
	// Append writes one notification for a customer.
	Append(ctx context.Context, notification *entity.Notification) error

	// ListByCustomer returns all of a customer's notifications, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Notification, error)

	// ListUnread returns the customer's unread notifications, newest first.
	ListUnread(ctx context.Context, customerID string) ([]*entity.Notification, error)

	// MarkAllRead flags every notification of the customer as read.
	MarkAllRead(ctx context.Context, customerID string) error
}
