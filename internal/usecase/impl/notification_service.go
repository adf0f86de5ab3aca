package impl

import (
	"context"
	"log/slog"

	deliverycontext "drugweb/internal/delivery/context"
	"drugweb/internal/domain/entity"
	"drugweb/internal/domain/repository"
	"drugweb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAll returns every notification of the customer and marks them read.
func (srv *notificationService) ListAll(ctx context.Context, customerID string) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list notifications", slog.String("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list notifications")
	}

	if err := srv.notificationRepo.MarkAllRead(ctx, customerID); err != nil {
		return nil, errors.Wrap(err, "failed to mark notifications read")
	}

	return notifications, nil
}

// ListUnread returns the customer's unread notifications and marks them read.
func (srv *notificationService) ListUnread(ctx context.Context, customerID string) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListUnread(ctx, customerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list unread notifications", slog.String("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list unread notifications")
	}

	if err := srv.notificationRepo.MarkAllRead(ctx, customerID); err != nil {
		return nil, errors.Wrap(err, "failed to mark notifications read")
	}

	return notifications, nil
}
