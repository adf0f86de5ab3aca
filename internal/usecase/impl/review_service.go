package impl

import (
	"context"
	"log/slog"

	deliverycontext "drugweb/internal/delivery/context"
	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records a customer review.
func (srv *reviewService) Submit(ctx context.Context, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if input.Text == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("review text is required")
	}

	review := &entity.Review{
		CustomerID: input.CustomerID,
		Text:       input.Text,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Error("Failed to submit review", slog.String("customerID", input.CustomerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to submit review")
	}

	return review, nil
}

// ListAll returns every review for the admin dashboard.
func (srv *reviewService) ListAll(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
