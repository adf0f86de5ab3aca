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

// deliveryDateLayout is the wire format for courier delivery dates.
const deliveryDateLayout = "2006-01-02"

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler holds dependencies for the delivery assignment handlers.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler.
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// AssignRequest represents the request body for routing a payment to a courier.
type AssignRequest struct {
	StaffID string `json:"staff_id" validate:"required"`
}

// RespondRequest represents a courier's response to an assignment.
// DeliveryDate is required for accept only.
type RespondRequest struct {
	Action       string `json:"action" validate:"required,oneof=accept decline delivered"`
	DeliveryDate string `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
}

// PaymentResponse is the public shape of a payment record.
type PaymentResponse struct {
	PaymentID       string  `json:"payment_id"`
	CustomerID      string  `json:"customer_id"`
	Amount          string  `json:"amount"`
	PaymentType     string  `json:"payment_type"`
	Status          string  `json:"status"`
	DeliveryStaffID *string `json:"delivery_staff_id,omitempty"`
	DeliveryDate    string  `json:"delivery_date,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// PaymentSummaryResponse is a payment joined with the people around it, used
// by the admin payment list and the courier dashboard.
type PaymentSummaryResponse struct {
	PaymentResponse
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	StaffName       string `json:"staff_name,omitempty"`
	StaffPhone      string `json:"staff_phone,omitempty"`
}

// StaffResponse is a delivery staff entry on the admin assignment screen.
type StaffResponse struct {
	StaffID string `json:"staff_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Area    string `json:"area"`
}

func toPaymentResponse(payment *entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		PaymentID:       payment.PaymentID,
		CustomerID:      payment.CustomerID,
		Amount:          payment.Amount.StringFixed(2),
		PaymentType:     payment.PaymentType,
		Status:          payment.Status.String(),
		DeliveryStaffID: payment.DeliveryStaffID,
		CreatedAt:       payment.CreatedAt.Format(time.RFC3339),
	}
	if payment.DeliveryDate != nil {
		resp.DeliveryDate = payment.DeliveryDate.Format(deliveryDateLayout)
	}

	return resp
}

func toPaymentSummaryResponses(summaries []*entity.PaymentSummary) []*PaymentSummaryResponse {
	list := make([]*PaymentSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		list = append(list, &PaymentSummaryResponse{
			PaymentResponse: toPaymentResponse(&summary.Payment),
			CustomerName:    summary.CustomerName,
			CustomerPhone:   summary.CustomerPhone,
			CustomerAddress: summary.CustomerAddress,
			StaffName:       summary.StaffName,
			StaffPhone:      summary.StaffPhone,
		})
	}

	return list
}

// Assign handles an admin routing a payment to a courier.
func (h *DeliveryHandler) Assign(c echo.Context) error {
	paymentID := c.Param("id")
	if paymentID == "" {
		return response.BadRequest(c, "INVALID_ID", "Payment ID is required")
	}

	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.deliveryUC.Assign(c.Request().Context(), &usecase.AssignDeliveryInput{
		PaymentID: paymentID,
		StaffID:   req.StaffID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"payment_id": output.PaymentID,
		"staff_id":   output.StaffID,
		"staff_name": output.StaffName,
	}, "Delivery assigned successfully")
}

// Respond handles a courier accepting, declining or closing out an assignment.
func (h *DeliveryHandler) Respond(c echo.Context) error {
	staffID, err := getUserID(c)
	if err != nil {
		return err
	}

	paymentID := c.Param("id")
	if paymentID == "" {
		return response.BadRequest(c, "INVALID_ID", "Payment ID is required")
	}

	var req RespondRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RespondDeliveryInput{
		PaymentID: paymentID,
		StaffID:   staffID,
		Action:    usecase.DeliveryAction(req.Action),
	}
	if req.DeliveryDate != "" {
		deliveryDate, err := time.Parse(deliveryDateLayout, req.DeliveryDate)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid delivery date")
		}
		input.DeliveryDate = deliveryDate
	}

	if err := h.deliveryUC.Respond(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"payment_id": paymentID, "action": req.Action}, "Delivery response recorded")
}

// ListAssignments handles listing the payments currently routed to the
// calling courier.
func (h *DeliveryHandler) ListAssignments(c echo.Context) error {
	staffID, err := getUserID(c)
	if err != nil {
		return err
	}

	summaries, err := h.deliveryUC.ListAssignments(c.Request().Context(), staffID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentSummaryResponses(summaries), "Assignments retrieved successfully")
}

// ListAllPayments handles the admin view over every payment.
func (h *DeliveryHandler) ListAllPayments(c echo.Context) error {
	summaries, err := h.deliveryUC.ListAllPayments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentSummaryResponses(summaries), "Payments retrieved successfully")
}

// ListMyPayments handles a customer's own payment history.
func (h *DeliveryHandler) ListMyPayments(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	payments, err := h.deliveryUC.ListCustomerPayments(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	list := make([]PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		list = append(list, toPaymentResponse(payment))
	}

	return response.Success(c, http.StatusOK, list, "Payments retrieved successfully")
}

// ListStaff handles the admin listing of delivery personnel.
func (h *DeliveryHandler) ListStaff(c echo.Context) error {
	staff, err := h.deliveryUC.ListStaff(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	list := make([]*StaffResponse, 0, len(staff))
	for _, member := range staff {
		entry := &StaffResponse{
			StaffID: member.ID,
			Name:    member.FullName(),
			Phone:   member.Phone,
		}
		if member.DeliveryProfile != nil {
			entry.Area = member.DeliveryProfile.Area
		}
		list = append(list, entry)
	}

	return response.Success(c, http.StatusOK, list, "Delivery staff retrieved successfully")
}
