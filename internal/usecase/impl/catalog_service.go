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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	MedicineRepo repository.MedicineRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		medicineRepo: params.MedicineRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMedicines returns catalog entries matching the search term in the
// requested order. An unknown sort key falls back to name order.
func (srv *catalogService) ListMedicines(ctx context.Context, input *usecase.ListMedicinesInput) ([]*entity.Medicine, error) {
	sortBy := input.SortBy
	switch sortBy {
	case repository.SortByName, repository.SortByPrice, repository.SortByCategory:
	default:
		sortBy = repository.SortByName
	}

	medicines, err := srv.medicineRepo.List(ctx, input.Search, sortBy)
	if err != nil {
		srv.log(ctx).Error("Failed to list medicines", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list medicines")
	}

	return medicines, nil
}

// GetMedicine returns a single catalog entry by code.
func (srv *catalogService) GetMedicine(ctx context.Context, code string) (*entity.Medicine, error) {
	medicine, err := srv.medicineRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to load medicine")
	}

	return medicine, nil
}
