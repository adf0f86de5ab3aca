package postgres

import (
	"context"

	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindLine retrieves the customer's line for a medicine, if any.
func (repo *cartRepository) FindLine(ctx context.Context, customerID, medicineCode string) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND med_code = ?", customerID, medicineCode).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	return toCartItemDomain(&itemM), nil
}

// FindLineByID retrieves a line by its ID, scoped to the owning customer so
// one customer cannot touch another's cart.
func (repo *cartRepository) FindLineByID(ctx context.Context, customerID string, cartID int64) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND customer_id = ?", cartID, customerID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line by id")
	}

	return toCartItemDomain(&itemM), nil
}

// Create inserts a new cart line.
func (repo *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMedicineNotFound.WrapMessage("unknown medicine code")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart line")
	}

	item.CartID = itemM.CartID
	item.AddedAt = itemM.AddedAt

	return nil
}

// UpdateQuantity sets a line's quantity and total price.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, customerID string, cartID int64, quantity int, total decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("cart_id = ? AND customer_id = ?", cartID, customerID).
		Updates(map[string]any{
			"quantity":    quantity,
			"total_price": total,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart line quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Delete removes a line. Deleting an absent line is not an error.
func (repo *cartRepository) Delete(ctx context.Context, customerID string, cartID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND customer_id = ?", cartID, customerID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart line")
	}

	return nil
}

// ListByCustomer returns the customer's lines joined with the current
// medicine name, newest first.
func (repo *cartRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Medicine").
		Where("customer_id = ?", customerID).
		Order("added_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// ListForUpdate returns the customer's lines under an exclusive row lock,
// holding off concurrent checkouts for the same customer until commit.
// It must be called inside a transaction.
func (repo *cartRepository) ListForUpdate(ctx context.Context, customerID string) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ?", customerID).
		Order("cart_id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock cart lines")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// TotalValue sums total_price over the customer's lines; zero when empty.
func (repo *cartRepository) TotalValue(ctx context.Context, customerID string) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	if err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Select("SUM(total_price)").
		Where("customer_id = ?", customerID).
		Scan(&total).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum cart total")
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

// Clear deletes every line belonging to the customer.
func (repo *cartRepository) Clear(ctx context.Context, customerID string) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	item := &entity.CartItem{
		CartID:       data.CartID,
		CustomerID:   data.CustomerID,
		MedicineCode: data.MedicineCode,
		Quantity:     data.Quantity,
		UnitPrice:    data.UnitPrice,
		TotalPrice:   data.TotalPrice,
		AddedAt:      data.AddedAt,
	}

	if data.Medicine != nil {
		item.MedicineName = data.Medicine.Name
	}

	return item
}

// fromCartItemDomain converts a domain CartItem entity to a GORM CartItemModel.
func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		CartID:       data.CartID,
		CustomerID:   data.CustomerID,
		MedicineCode: data.MedicineCode,
		Quantity:     data.Quantity,
		UnitPrice:    data.UnitPrice,
		TotalPrice:   data.TotalPrice,
	}
}
