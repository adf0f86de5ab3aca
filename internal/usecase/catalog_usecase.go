package usecase

import (
	"context"

	"drugweb/internal/domain/entity"
	"drugweb/internal/domain/repository"
)

// ListMedicinesInput carries the optional search term and sort key for a
// catalog listing.
type ListMedicinesInput struct {
	Search string
	SortBy repository.MedicineSort
}

// CatalogUsecase defines the interface for catalog browsing operations.
type CatalogUsecase interface {
	ListMedicines(ctx context.Context, input *ListMedicinesInput) ([]*entity.Medicine, error)
	GetMedicine(ctx context.Context, code string) (*entity.Medicine, error)
}
