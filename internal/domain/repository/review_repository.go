package repository

import (
	"context"

	"drugweb/internal/domain/entity"
)

// ReviewRepository defines the interface for customer reviews.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// ListAll returns every review with customer names for the admin dashboard.
	ListAll(ctx context.Context) ([]*entity.Review, error)
}
