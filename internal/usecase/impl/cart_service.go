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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo     repository.CartRepository
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo     repository.CartRepository
	MedicineRepo repository.MedicineRepository
	Logger       *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:     params.CartRepo,
		medicineRepo: params.MedicineRepo,
		logger:       params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart puts a medicine in the customer's cart. Adding a medicine the
// cart already holds increments the existing line; the stock check always
// covers the cumulative quantity, not just the increment.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) (*entity.CartItem, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("quantity must be at least 1")
	}

	medicine, err := srv.medicineRepo.FindByCode(ctx, input.MedicineCode)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to load medicine for cart add")
	}

	line, err := srv.cartRepo.FindLine(ctx, input.CustomerID, input.MedicineCode)
	if err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, errors.Wrap(err, "failed to load cart line")
	}

	if line != nil {
		newQuantity := line.Quantity + input.Quantity
		if newQuantity > medicine.Stock {
			return nil, domainerrors.ErrInsufficientStock.WrapMessage("requested quantity exceeds available stock")
		}

		total := medicine.Price.Mul(decimal.NewFromInt(int64(newQuantity)))
		if err := srv.cartRepo.UpdateQuantity(ctx, input.CustomerID, line.CartID, newQuantity, total); err != nil {
			return nil, errors.Wrap(err, "failed to increment cart line")
		}

		line.Quantity = newQuantity
		line.UnitPrice = medicine.Price
		line.TotalPrice = total
		line.MedicineName = medicine.Name

		srv.log(ctx).Debug("Cart line incremented", slog.String("customerID", input.CustomerID), slog.String("medCode", input.MedicineCode), slog.Int("quantity", newQuantity))

		return line, nil
	}

	if input.Quantity > medicine.Stock {
		return nil, domainerrors.ErrInsufficientStock.WrapMessage("requested quantity exceeds available stock")
	}

	newLine := &entity.CartItem{
		CustomerID:   input.CustomerID,
		MedicineCode: medicine.Code,
		MedicineName: medicine.Name,
		Quantity:     input.Quantity,
		UnitPrice:    medicine.Price,
		TotalPrice:   medicine.Price.Mul(decimal.NewFromInt(int64(input.Quantity))),
	}

	if err := srv.cartRepo.Create(ctx, newLine); err != nil {
		return nil, errors.Wrap(err, "failed to create cart line")
	}

	srv.log(ctx).Debug("Cart line created", slog.String("customerID", input.CustomerID), slog.String("medCode", input.MedicineCode), slog.Int("quantity", input.Quantity))

	return newLine, nil
}

// UpdateQuantity sets a line's quantity, recomputing the line total from the
// current catalog price.
func (srv *cartService) UpdateQuantity(ctx context.Context, input *usecase.UpdateCartLineInput) (*entity.CartItem, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("quantity must be at least 1")
	}

	line, err := srv.cartRepo.FindLineByID(ctx, input.CustomerID, input.CartID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart line")
	}

	medicine, err := srv.medicineRepo.FindByCode(ctx, line.MedicineCode)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to load medicine for cart update")
	}

	if input.Quantity > medicine.Stock {
		return nil, domainerrors.ErrInsufficientStock.WrapMessage("requested quantity exceeds available stock")
	}

	total := medicine.Price.Mul(decimal.NewFromInt(int64(input.Quantity)))
	if err := srv.cartRepo.UpdateQuantity(ctx, input.CustomerID, input.CartID, input.Quantity, total); err != nil {
		return nil, errors.Wrap(err, "failed to update cart line")
	}

	line.Quantity = input.Quantity
	line.UnitPrice = medicine.Price
	line.TotalPrice = total
	line.MedicineName = medicine.Name

	return line, nil
}

// RemoveLine drops a line from the customer's cart.
func (srv *cartService) RemoveLine(ctx context.Context, input *usecase.RemoveCartLineInput) error {
	if err := srv.cartRepo.Delete(ctx, input.CustomerID, input.CartID); err != nil {
		return errors.Wrap(err, "failed to remove cart line")
	}

	return nil
}

// ViewCart returns the customer's lines with the running total.
func (srv *cartService) ViewCart(ctx context.Context, customerID string) (*usecase.CartView, error) {
	items, err := srv.cartRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list cart", slog.String("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cart")
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}

	return &usecase.CartView{
		Items: items,
		Total: total,
	}, nil
}
