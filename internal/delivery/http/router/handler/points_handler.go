package handler

import (
	"log/slog"
	"net/http"
	"time"

	"drugweb/internal/delivery/http/response"
	"drugweb/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PointsHandlerParams holds dependencies for PointsHandler, injected by Fx.
type PointsHandlerParams struct {
	fx.In

	PointsUC usecase.PointsUsecase
	Logger   *slog.Logger
}

// PointsHandler holds dependencies for the loyalty points handler.
type PointsHandler struct {
	pointsUC usecase.PointsUsecase
	logger   *slog.Logger
}

// NewPointsHandler is the constructor for PointsHandler.
func NewPointsHandler(params PointsHandlerParams) *PointsHandler {
	return &PointsHandler{
		pointsUC: params.PointsUC,
		logger:   params.Logger,
	}
}

// PointsEntryResponse is one row of the loyalty points ledger.
type PointsEntryResponse struct {
	HistoryID       int64  `json:"history_id"`
	PointsEarned    int    `json:"points_earned"`
	TransactionType string `json:"transaction_type"`
	PaymentID       string `json:"payment_id"`
	Description     string `json:"description"`
	CreatedAt       string `json:"created_at"`
}

// PointsResponse is the customer's balance with the ledger that backs it.
type PointsResponse struct {
	Balance int                    `json:"balance"`
	History []*PointsEntryResponse `json:"history"`
}

// View handles the customer's loyalty points view.
func (h *PointsHandler) View(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	view, err := h.pointsUC.View(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	history := make([]*PointsEntryResponse, 0, len(view.History))
	for _, entry := range view.History {
		history = append(history, &PointsEntryResponse{
			HistoryID:       entry.HistoryID,
			PointsEarned:    entry.PointsEarned,
			TransactionType: entry.TransactionType,
			PaymentID:       entry.PaymentID,
			Description:     entry.Description,
			CreatedAt:       entry.CreatedAt.Format(time.RFC3339),
		})
	}

	return response.Success(c, http.StatusOK, &PointsResponse{
		Balance: view.Balance,
		History: history,
	}, "Points retrieved successfully")
}
