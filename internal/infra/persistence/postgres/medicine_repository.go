package postgres

import (
	"context"

	"drugweb/internal/domain/entity"
	"drugweb/internal/domain/repository"
	"drugweb/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// medicineRepository implements the repository.MedicineRepository interface.
type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(db *gorm.DB) repository.MedicineRepository {
	return &medicineRepository{
		db: db,
	}
}

// FindByCode retrieves a single medicine by its catalog code.
func (repo *medicineRepository) FindByCode(ctx context.Context, code string) (*entity.Medicine, error) {
	var medicineM model.MedicineModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&medicineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine by code")
	}

	return toMedicineDomain(&medicineM), nil
}

// List returns medicines matching the search term, ordered by the sort key.
// The search matches name, generic name and category as case-insensitive
// substrings; an empty search returns the full catalog.
func (repo *medicineRepository) List(ctx context.Context, search string, sortBy repository.MedicineSort) ([]*entity.Medicine, error) {
	var medicineModels []*model.MedicineModel

	query := repo.db.WithContext(ctx).Model(&model.MedicineModel{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"name ILIKE ? OR generic_name ILIKE ? OR category ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	switch sortBy {
	case repository.SortByPrice:
		query = query.Order("price")
	case repository.SortByCategory:
		query = query.Order("category").Order("name")
	default:
		query = query.Order("name")
	}

	if err := query.Find(&medicineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	medicines := make([]*entity.Medicine, 0, len(medicineModels))
	for _, medicineM := range medicineModels {
		medicines = append(medicines, toMedicineDomain(medicineM))
	}

	return medicines, nil
}

// --- Mapper Functions ---

// toMedicineDomain converts a GORM MedicineModel to a domain Medicine entity.
func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	if data == nil {
		return nil
	}

	return &entity.Medicine{
		Code:        data.Code,
		Name:        data.Name,
		GenericName: data.GenericName,
		Category:    data.Category,
		Price:       data.Price,
		Stock:       data.Stock,
	}
}
