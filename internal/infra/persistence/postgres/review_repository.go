package postgres

import (
	"context"

	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("unknown customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ReviewID = reviewM.ReviewID

	return nil
}

// ListAll returns every review with customer names for the admin dashboard.
func (repo *reviewRepository) ListAll(ctx context.Context) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ReviewID:   data.ReviewID,
		CustomerID: data.CustomerID,
		Text:       data.Text,
	}

	if data.Customer != nil {
		review.CustomerName = data.Customer.FirstName + " " + data.Customer.LastName
	}

	return review
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ReviewID:   data.ReviewID,
		CustomerID: data.CustomerID,
		Text:       data.Text,
	}
}
