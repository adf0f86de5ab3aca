package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"drugweb/internal/delivery/http/response"
	"drugweb/internal/domain/entity"
	"drugweb/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest represents the request body for adding a medicine to the cart.
type AddToCartRequest struct {
	MedicineCode string `json:"medicine_code" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateQuantityRequest represents the request body for setting a line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CartLineResponse is one line of the customer's cart.
type CartLineResponse struct {
	CartID       int64  `json:"cart_id"`
	MedicineCode string `json:"medicine_code"`
	MedicineName string `json:"medicine_name"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	TotalPrice   string `json:"total_price"`
}

// CartResponse is the customer's cart with its running total.
type CartResponse struct {
	Items []*CartLineResponse `json:"items"`
	Total string              `json:"total"`
}

func toCartLineResponse(line *entity.CartItem) *CartLineResponse {
	return &CartLineResponse{
		CartID:       line.CartID,
		MedicineCode: line.MedicineCode,
		MedicineName: line.MedicineName,
		Quantity:     line.Quantity,
		UnitPrice:    line.UnitPrice.StringFixed(2),
		TotalPrice:   line.TotalPrice.StringFixed(2),
	}
}

// AddToCart handles putting a medicine in the cart. Adding a medicine that is
// already in the cart increments the existing line.
func (h *CartHandler) AddToCart(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	line, err := h.cartUC.AddToCart(c.Request().Context(), &usecase.AddToCartInput{
		CustomerID:   customerID,
		MedicineCode: req.MedicineCode,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCartLineResponse(line), "Medicine added to cart")
}

// UpdateQuantity handles setting a cart line's quantity.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	cartID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart line ID")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	line, err := h.cartUC.UpdateQuantity(c.Request().Context(), &usecase.UpdateCartLineInput{
		CustomerID: customerID,
		CartID:     cartID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartLineResponse(line), "Cart updated")
}

// RemoveLine handles dropping a line from the cart.
func (h *CartHandler) RemoveLine(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	cartID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart line ID")
	}

	if err := h.cartUC.RemoveLine(c.Request().Context(), &usecase.RemoveCartLineInput{
		CustomerID: customerID,
		CartID:     cartID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item removed from cart"}, "Item removed from cart")
}

// ViewCart handles listing the customer's cart with its running total.
func (h *CartHandler) ViewCart(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	view, err := h.cartUC.ViewCart(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*CartLineResponse, 0, len(view.Items))
	for _, line := range view.Items {
		items = append(items, toCartLineResponse(line))
	}

	return response.Success(c, http.StatusOK, &CartResponse{
		Items: items,
		Total: view.Total.StringFixed(2),
	}, "Cart retrieved successfully")
}
