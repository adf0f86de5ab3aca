package impl

import (
	"context"
	"testing"

	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture() (*cartService, *memCartRepo) {
	cartRepo := newMemCartRepo()
	medicineRepo := newMemMedicineRepo(
		&entity.Medicine{Code: "MED001", Name: "Panadol", GenericName: "Paracetamol", Category: "Pain Relief", Price: decimal.RequireFromString("5.50"), Stock: 10},
		&entity.Medicine{Code: "MED002", Name: "Brufen", GenericName: "Ibuprofen", Category: "Pain Relief", Price: decimal.RequireFromString("8.00"), Stock: 2},
	)

	service := &cartService{
		cartRepo:     cartRepo,
		medicineRepo: medicineRepo,
		logger:       testLogger(),
	}

	return service, cartRepo
}

func TestAddToCart_CreatesLine(t *testing.T) {
	service, _ := newCartFixture()

	line, err := service.AddToCart(context.Background(), &usecase.AddToCartInput{
		CustomerID:   "CM001",
		MedicineCode: "MED001",
		Quantity:     3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Panadol", line.MedicineName)
	assert.Equal(t, 3, line.Quantity)
	assert.True(t, line.TotalPrice.Equal(decimal.RequireFromString("16.50")))
}

func TestAddToCart_SameMedicineIncrementsExistingLine(t *testing.T) {
	service, cartRepo := newCartFixture()

	first, err := service.AddToCart(context.Background(), &usecase.AddToCartInput{
		CustomerID:   "CM001",
		MedicineCode: "MED001",
		Quantity:     2,
	})
	require.NoError(t, err)

	second, err := service.AddToCart(context.Background(), &usecase.AddToCartInput{
		CustomerID:   "CM001",
		MedicineCode: "MED001",
		Quantity:     4,
	})
	require.NoError(t, err)

	// Same line, not a new one
	assert.Equal(t, first.CartID, second.CartID)
	assert.Equal(t, 6, second.Quantity)
	assert.True(t, second.TotalPrice.Equal(decimal.RequireFromString("33.00")))

	items, _ := cartRepo.ListByCustomer(context.Background(), "CM001")
	assert.Len(t, items, 1)
}

func TestAddToCart_StockCoversCumulativeQuantity(t *testing.T) {
	service, _ := newCartFixture()

	// Stock for MED002 is 2; a first add of 2 fills it.
	_, err := service.AddToCart(context.Background(), &usecase.AddToCartInput{
		CustomerID:   "CM001",
		MedicineCode: "MED002",
		Quantity:     2,
	})
	require.NoError(t, err)

	// Adding one more would take the cumulative quantity past stock.
	_, err = service.AddToCart(context.Background(), &usecase.AddToCartInput{
		CustomerID:   "CM001",
		MedicineCode: "MED002",
		Quantity:     1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestAddToCart_UnknownMedicine(t *testing.T) {
	service, _ := newCartFixture()

	_, err := service.AddToCart(context.Background(), &usecase.AddToCartInput{
		CustomerID:   "CM001",
		MedicineCode: "MED999",
		Quantity:     1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
}

func TestAddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	service, _ := newCartFixture()

	_, err := service.AddToCart(context.Background(), &usecase.AddToCartInput{
		CustomerID:   "CM001",
		MedicineCode: "MED001",
		Quantity:     0,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestUpdateQuantity_ChecksStock(t *testing.T) {
	service, _ := newCartFixture()

	line, err := service.AddToCart(context.Background(), &usecase.AddToCartInput{
		CustomerID:   "CM001",
		MedicineCode: "MED002",
		Quantity:     1,
	})
	require.NoError(t, err)

	_, err = service.UpdateQuantity(context.Background(), &usecase.UpdateCartLineInput{
		CustomerID: "CM001",
		CartID:     line.CartID,
		Quantity:   5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	updated, err := service.UpdateQuantity(context.Background(), &usecase.UpdateCartLineInput{
		CustomerID: "CM001",
		CartID:     line.CartID,
		Quantity:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity)
	assert.True(t, updated.TotalPrice.Equal(decimal.RequireFromString("16.00")))
}

func TestUpdateQuantity_ScopedToOwner(t *testing.T) {
	service, _ := newCartFixture()

	line, err := service.AddToCart(context.Background(), &usecase.AddToCartInput{
		CustomerID:   "CM001",
		MedicineCode: "MED001",
		Quantity:     1,
	})
	require.NoError(t, err)

	// Another customer cannot touch the line.
	_, err = service.UpdateQuantity(context.Background(), &usecase.UpdateCartLineInput{
		CustomerID: "CM002",
		CartID:     line.CartID,
		Quantity:   2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestViewCart_SumsLineTotals(t *testing.T) {
	service, _ := newCartFixture()

	_, err := service.AddToCart(context.Background(), &usecase.AddToCartInput{CustomerID: "CM001", MedicineCode: "MED001", Quantity: 2})
	require.NoError(t, err)
	_, err = service.AddToCart(context.Background(), &usecase.AddToCartInput{CustomerID: "CM001", MedicineCode: "MED002", Quantity: 1})
	require.NoError(t, err)

	view, err := service.ViewCart(context.Background(), "CM001")
	require.NoError(t, err)

	assert.Len(t, view.Items, 2)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("19.00")), "total was %s", view.Total)
}

func TestRemoveLine_AbsentLineIsNoError(t *testing.T) {
	service, _ := newCartFixture()

	err := service.RemoveLine(context.Background(), &usecase.RemoveCartLineInput{
		CustomerID: "CM001",
		CartID:     42,
	})
	assert.NoError(t, err)
}
