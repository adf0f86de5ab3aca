package postgres

import (
	"context"

	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Append writes one notification for a customer.
func (repo *notificationRepository) Append(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("unknown customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append notification")
	}

	notification.NotificationID = notificationM.NotificationID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByCustomer returns all of a customer's notifications, newest first.
func (repo *notificationRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return toNotificationDomains(notificationModels), nil
}

// ListUnread returns the customer's unread notifications, newest first.
func (repo *notificationRepository) ListUnread(ctx context.Context, customerID string) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND is_read = ?", customerID, false).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list unread notifications")
	}

	return toNotificationDomains(notificationModels), nil
}

// MarkAllRead flags every notification of the customer as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, customerID string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("customer_id = ? AND is_read = ?", customerID, false).
		Update("is_read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		NotificationID: data.NotificationID,
		CustomerID:     data.CustomerID,
		Message:        data.Message,
		Type:           data.Type,
		IsRead:         data.IsRead,
		CreatedAt:      data.CreatedAt,
	}
}

func toNotificationDomains(notificationModels []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		NotificationID: data.NotificationID,
		CustomerID:     data.CustomerID,
		Message:        data.Message,
		Type:           data.Type,
		IsRead:         data.IsRead,
	}
}
