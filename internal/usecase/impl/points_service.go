package impl

import (
	"context"
	"log/slog"

	deliverycontext "drugweb/internal/delivery/context"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pointsService implements the PointsUsecase interface.
type pointsService struct {
	pointsRepo repository.PointsRepository
	logger     *slog.Logger
}

// PointsServiceParams holds dependencies for pointsService, injected by Fx.
type PointsServiceParams struct {
	fx.In

	PointsRepo repository.PointsRepository
	Logger     *slog.Logger
}

// NewPointsService is the constructor for pointsService.
func NewPointsService(params PointsServiceParams) usecase.PointsUsecase {
	return &pointsService{
		pointsRepo: params.PointsRepo,
		logger:     params.Logger,
	}
}

func (srv *pointsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// View returns the customer's balance and the ledger entries behind it.
func (srv *pointsService) View(ctx context.Context, customerID string) (*usecase.PointsView, error) {
	balance, err := srv.pointsRepo.Balance(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to read point balance", slog.String("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to read point balance")
	}

	history, err := srv.pointsRepo.ListHistory(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list points history")
	}

	return &usecase.PointsView{
		Balance: balance,
		History: history,
	}, nil
}
