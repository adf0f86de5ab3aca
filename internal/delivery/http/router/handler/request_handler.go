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

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler holds dependencies for the medicine request handlers.
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler.
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// SubmitRequestRequest represents a customer's ask for a medicine the
// catalog does not carry.
type SubmitRequestRequest struct {
	MedicineName string `json:"medicine_name" validate:"required"`
	ExpectedDate string `json:"expected_date" validate:"omitempty,datetime=2006-01-02"`
}

// DecideRequestRequest represents an admin triage decision.
type DecideRequestRequest struct {
	CustomerID   string `json:"customer_id" validate:"required"`
	MedicineName string `json:"medicine_name" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=Accepted Declined"`
}

// RequestResponse is the public shape of a medicine request.
type RequestResponse struct {
	RequestID    int64  `json:"request_id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`
	MedicineName string `json:"medicine_name"`
	ExpectedDate string `json:"expected_date,omitempty"`
	Status       string `json:"status"`
}

func toRequestResponse(request *entity.CustomerRequest) *RequestResponse {
	resp := &RequestResponse{
		RequestID:    request.RequestID,
		CustomerID:   request.CustomerID,
		CustomerName: request.CustomerName,
		MedicineName: request.MedicineName,
		Status:       request.Status.String(),
	}
	if !request.ExpectedDate.IsZero() {
		resp.ExpectedDate = request.ExpectedDate.Format(deliveryDateLayout)
	}

	return resp
}

func toRequestResponses(requests []*entity.CustomerRequest) []*RequestResponse {
	list := make([]*RequestResponse, 0, len(requests))
	for _, request := range requests {
		list = append(list, toRequestResponse(request))
	}

	return list
}

// Submit handles a customer filing a medicine request.
func (h *RequestHandler) Submit(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SubmitRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SubmitRequestInput{
		CustomerID:   customerID,
		MedicineName: req.MedicineName,
	}
	if req.ExpectedDate != "" {
		expectedDate, err := time.Parse(deliveryDateLayout, req.ExpectedDate)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid expected date")
		}
		input.ExpectedDate = expectedDate
	}

	request, err := h.requestUC.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRequestResponse(request), "Request submitted successfully")
}

// Decide handles an admin accepting or declining a request. A later decision
// overwrites an earlier one.
func (h *RequestHandler) Decide(c echo.Context) error {
	var req DecideRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.requestUC.Decide(c.Request().Context(), &usecase.DecideRequestInput{
		CustomerID:   req.CustomerID,
		MedicineName: req.MedicineName,
		Status:       entity.RequestStatus(req.Status),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"customer_id":   req.CustomerID,
		"medicine_name": req.MedicineName,
		"status":        req.Status,
	}, "Request decision recorded")
}

// ListAll handles the admin triage view over every request.
func (h *RequestHandler) ListAll(c echo.Context) error {
	requests, err := h.requestUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRequestResponses(requests), "Requests retrieved successfully")
}

// ListMine handles a customer's view over their own requests.
func (h *RequestHandler) ListMine(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.requestUC.ListMine(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRequestResponses(requests), "Requests retrieved successfully")
}
