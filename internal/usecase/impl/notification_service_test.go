package impl

import (
	"context"
	"testing"

	"drugweb/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotifications(repo *memNotificationRepo) {
	_ = repo.Append(context.Background(), &entity.Notification{
		CustomerID: "CM001",
		Message:    "Payment PAY123456 of $56.75 was successful. You earned 5 points!",
		Type:       entity.NotificationPaymentSuccess,
	})
	_ = repo.Append(context.Background(), &entity.Notification{
		CustomerID: "CM001",
		Message:    "Your order PAY123456 has been delivered. Thank you for shopping with us!",
		Type:       entity.NotificationDeliveryCompleted,
	})
	_ = repo.Append(context.Background(), &entity.Notification{
		CustomerID: "CM002",
		Message:    "Payment PAY777777 of $10.00 was successful. You earned 1 points!",
		Type:       entity.NotificationPaymentSuccess,
	})
}

func TestNotifications_FetchMarksRead(t *testing.T) {
	notificationRepo := newMemNotificationRepo()
	seedNotifications(notificationRepo)

	service := &notificationService{
		notificationRepo: notificationRepo,
		logger:           testLogger(),
	}

	unread, err := service.ListUnread(context.Background(), "CM001")
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	// The fetch marked them read; a second fetch is empty.
	unread, err = service.ListUnread(context.Background(), "CM001")
	require.NoError(t, err)
	assert.Empty(t, unread)

	// Another customer's notifications are untouched.
	other, err := service.ListUnread(context.Background(), "CM002")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestNotifications_ListAllKeepsHistory(t *testing.T) {
	notificationRepo := newMemNotificationRepo()
	seedNotifications(notificationRepo)

	service := &notificationService{
		notificationRepo: notificationRepo,
		logger:           testLogger(),
	}

	all, err := service.ListAll(context.Background(), "CM001")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// History survives the read marking.
	all, err = service.ListAll(context.Background(), "CM001")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, notification := range all {
		assert.True(t, notification.IsRead)
	}
}
