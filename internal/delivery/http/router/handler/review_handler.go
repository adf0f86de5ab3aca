package handler

import (
	"log/slog"
	"net/http"

	"drugweb/internal/delivery/http/response"
	"drugweb/internal/domain/entity"
	"drugweb/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for the review handlers.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// SubmitReviewRequest represents the request body for leaving a review.
type SubmitReviewRequest struct {
	Text string `json:"text" validate:"required"`
}

// ReviewResponse is the public shape of a customer review.
type ReviewResponse struct {
	ReviewID     int64  `json:"review_id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`
	Text         string `json:"text"`
}

func toReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ReviewID:     review.ReviewID,
		CustomerID:   review.CustomerID,
		CustomerName: review.CustomerName,
		Text:         review.Text,
	}
}

// Submit handles a customer leaving feedback.
func (h *ReviewHandler) Submit(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.reviewUC.Submit(c.Request().Context(), &usecase.SubmitReviewInput{
		CustomerID: customerID,
		Text:       req.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review), "Review submitted successfully")
}

// ListAll handles the admin view over every review.
func (h *ReviewHandler) ListAll(c echo.Context) error {
	reviews, err := h.reviewUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	list := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		list = append(list, toReviewResponse(review))
	}

	return response.Success(c, http.StatusOK, list, "Reviews retrieved successfully")
}
