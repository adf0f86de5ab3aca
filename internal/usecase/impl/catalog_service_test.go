package impl

import (
	"context"
	"testing"

	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture() *catalogService {
	medicineRepo := newMemMedicineRepo(
		&entity.Medicine{Code: "MED001", Name: "Panadol", GenericName: "Paracetamol", Category: "Pain Relief", Price: decimal.RequireFromString("5.50"), Stock: 10},
		&entity.Medicine{Code: "MED002", Name: "Amoxil", GenericName: "Amoxicillin", Category: "Antibiotics", Price: decimal.RequireFromString("12.00"), Stock: 5},
		&entity.Medicine{Code: "MED003", Name: "Claritin", GenericName: "Loratadine", Category: "Allergy", Price: decimal.RequireFromString("9.25"), Stock: 0},
	)

	return &catalogService{
		medicineRepo: medicineRepo,
		logger:       testLogger(),
	}
}

func TestListMedicines_SearchMatchesGenericName(t *testing.T) {
	service := newCatalogFixture()

	medicines, err := service.ListMedicines(context.Background(), &usecase.ListMedicinesInput{
		Search: "amoxi",
	})
	require.NoError(t, err)
	require.Len(t, medicines, 1)
	assert.Equal(t, "MED002", medicines[0].Code)
}

func TestListMedicines_SortByPrice(t *testing.T) {
	service := newCatalogFixture()

	medicines, err := service.ListMedicines(context.Background(), &usecase.ListMedicinesInput{
		SortBy: repository.SortByPrice,
	})
	require.NoError(t, err)
	require.Len(t, medicines, 3)
	assert.Equal(t, "MED001", medicines[0].Code)
	assert.Equal(t, "MED003", medicines[1].Code)
	assert.Equal(t, "MED002", medicines[2].Code)
}

func TestListMedicines_UnknownSortFallsBackToName(t *testing.T) {
	service := newCatalogFixture()

	medicines, err := service.ListMedicines(context.Background(), &usecase.ListMedicinesInput{
		SortBy: repository.MedicineSort("stock"),
	})
	require.NoError(t, err)
	require.Len(t, medicines, 3)
	assert.Equal(t, "Amoxil", medicines[0].Name)
}

func TestGetMedicine_Unknown(t *testing.T) {
	service := newCatalogFixture()

	_, err := service.GetMedicine(context.Background(), "MED999")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
}
