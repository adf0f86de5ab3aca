package postgres

import (
	"context"

	"drugweb/internal/domain/entity"
	"drugweb/internal/domain/repository"
	"drugweb/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pointsRepository implements the repository.PointsRepository interface.
type pointsRepository struct {
	db *gorm.DB
}

// NewPointsRepository is the constructor for pointsRepository.
func NewPointsRepository(db *gorm.DB) repository.PointsRepository {
	return &pointsRepository{
		db: db,
	}
}

// IncrementBalance atomically adds delta to the customer's balance. The
// increment happens in SQL so concurrent checkouts cannot lose updates.
func (repo *pointsRepository) IncrementBalance(ctx context.Context, customerID string, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerProfileModel{}).
		Where("customer_id = ?", customerID).
		Update("points", gorm.Expr("points + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment point balance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Balance returns the customer's current point balance.
func (repo *pointsRepository) Balance(ctx context.Context, customerID string) (int, error) {
	var profileM model.CustomerProfileModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repository.ErrUserNotFound
		}

		return 0, errors.Wrap(err, "failed to read point balance")
	}

	return profileM.Points, nil
}

// AppendHistory writes one append-only ledger entry.
func (repo *pointsRepository) AppendHistory(ctx context.Context, entry *entity.PointsEntry) error {
	entryM := fromPointsEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to append points history")
	}

	entry.HistoryID = entryM.HistoryID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListHistory returns the customer's ledger entries, newest first.
func (repo *pointsRepository) ListHistory(ctx context.Context, customerID string) ([]*entity.PointsEntry, error) {
	var entryModels []*model.PointsEntryModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list points history")
	}

	entries := make([]*entity.PointsEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toPointsEntryDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toPointsEntryDomain converts a GORM PointsEntryModel to a domain PointsEntry entity.
func toPointsEntryDomain(data *model.PointsEntryModel) *entity.PointsEntry {
	if data == nil {
		return nil
	}

	return &entity.PointsEntry{
		HistoryID:       data.HistoryID,
		CustomerID:      data.CustomerID,
		PointsEarned:    data.PointsEarned,
		TransactionType: data.TransactionType,
		PaymentID:       data.PaymentID,
		Description:     data.Description,
		CreatedAt:       data.CreatedAt,
	}
}

// fromPointsEntryDomain converts a domain PointsEntry entity to a GORM PointsEntryModel.
func fromPointsEntryDomain(data *entity.PointsEntry) *model.PointsEntryModel {
	if data == nil {
		return nil
	}

	return &model.PointsEntryModel{
		HistoryID:       data.HistoryID,
		CustomerID:      data.CustomerID,
		PointsEarned:    data.PointsEarned,
		TransactionType: data.TransactionType,
		PaymentID:       data.PaymentID,
		Description:     data.Description,
	}
}
