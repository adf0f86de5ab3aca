package handler

import (
	"log/slog"
	"net/http"
	"time"

	"drugweb/internal/delivery/http/response"
	"drugweb/internal/domain/entity"
	"drugweb/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for the notification handlers.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// NotificationResponse is one entry of the customer's message log.
type NotificationResponse struct {
	NotificationID int64  `json:"notification_id"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	IsRead         bool   `json:"is_read"`
	CreatedAt      string `json:"created_at"`
}

func toNotificationResponses(notifications []*entity.Notification) []*NotificationResponse {
	list := make([]*NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		list = append(list, &NotificationResponse{
			NotificationID: notification.NotificationID,
			Message:        notification.Message,
			Type:           notification.Type,
			IsRead:         notification.IsRead,
			CreatedAt:      notification.CreatedAt.Format(time.RFC3339),
		})
	}

	return list
}

// ListAll handles listing the customer's full message log. Fetching marks
// the log read.
func (h *NotificationHandler) ListAll(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationUC.ListAll(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNotificationResponses(notifications), "Notifications retrieved successfully")
}

// ListUnread handles listing the notifications the customer has not seen
// yet. Fetching marks them read.
func (h *NotificationHandler) ListUnread(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationUC.ListUnread(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNotificationResponses(notifications), "Notifications retrieved successfully")
}
