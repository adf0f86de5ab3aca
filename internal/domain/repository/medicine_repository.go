package repository

import (
	"context"
	"errors"

	"drugweb/internal/domain/entity"
)

// ErrMedicineNotFound is returned when a medicine code is unknown.
var ErrMedicineNotFound = errors.New("medicine not found")

// MedicineSort selects the catalog listing order.
type MedicineSort string

const (
	SortByName     MedicineSort = "name"
	SortByPrice    MedicineSort = "price"
	SortByCategory MedicineSort = "category"
)

// MedicineRepository defines the interface for catalog reads.
type MedicineRepository interface {
	// FindByCode retrieves a single medicine by its catalog code.
	FindByCode(ctx context.Context, code string) (*entity.Medicine, error)

	// List returns medicines matching the search term (name, generic name or
	// category substring), ordered by the given sort key. An empty search
	// returns the full catalog.
	List(ctx context.Context, search string, sortBy MedicineSort) ([]*entity.Medicine, error)
}
