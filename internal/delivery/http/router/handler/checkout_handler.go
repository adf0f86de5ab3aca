package handler

import (
	"log/slog"
	"net/http"

	"drugweb/internal/delivery/http/response"
	"drugweb/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for the checkout handler.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler.
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest represents the request body for converting the cart into
// a payment.
type CheckoutRequest struct {
	PaymentType string `json:"payment_type" validate:"required"`
}

// CheckoutResponse reports the durable results of a committed checkout.
type CheckoutResponse struct {
	PaymentID    string `json:"payment_id"`
	Amount       string `json:"amount"`
	PointsEarned int    `json:"points_earned"`
}

// Checkout handles the checkout request. The payment, points and
// notification commit together or not at all.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.checkoutUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		CustomerID:  customerID,
		PaymentType: req.PaymentType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &CheckoutResponse{
		PaymentID:    output.PaymentID,
		Amount:       output.Amount.StringFixed(2),
		PointsEarned: output.PointsEarned,
	}, "Checkout completed successfully")
}
