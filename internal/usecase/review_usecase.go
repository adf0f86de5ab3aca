package usecase

import (
	"context"

	"drugweb/internal/domain/entity"
)

// SubmitReviewInput defines the data required to leave a review.
type SubmitReviewInput struct {
	CustomerID string
	Text       string
}

// ReviewUsecase defines the interface for customer feedback.
type ReviewUsecase interface {
	Submit(ctx context.Context, input *SubmitReviewInput) (*entity.Review, error)
	ListAll(ctx context.Context) ([]*entity.Review, error)
}
