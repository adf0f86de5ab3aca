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

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// Create persists a new request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.CustomerRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("unknown customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.RequestID = requestM.RequestID

	return nil
}

// FindByCustomerAndName retrieves a request by its triage key.
func (repo *requestRepository) FindByCustomerAndName(ctx context.Context, customerID, medicineName string) (*entity.CustomerRequest, error) {
	var requestM model.CustomerRequestModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND medicine_name = ?", customerID, medicineName).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request")
	}

	return toRequestDomain(&requestM), nil
}

// UpdateStatus overwrites the status of every request matching the pair.
// Repeated admin decisions are allowed; the latest one wins.
func (repo *requestRepository) UpdateStatus(ctx context.Context, customerID, medicineName string, status entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerRequestModel{}).
		Where("customer_id = ? AND medicine_name = ?", customerID, medicineName).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update request status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// ListAll returns every request with customer names for admin triage.
func (repo *requestRepository) ListAll(ctx context.Context) ([]*entity.CustomerRequest, error) {
	var requestModels []*model.CustomerRequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return toRequestDomains(requestModels), nil
}

// ListByCustomer returns a customer's own requests.
func (repo *requestRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.CustomerRequest, error) {
	var requestModels []*model.CustomerRequestModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests by customer")
	}

	return toRequestDomains(requestModels), nil
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM CustomerRequestModel to a domain CustomerRequest entity.
func toRequestDomain(data *model.CustomerRequestModel) *entity.CustomerRequest {
	if data == nil {
		return nil
	}

	request := &entity.CustomerRequest{
		RequestID:    data.RequestID,
		CustomerID:   data.CustomerID,
		MedicineName: data.MedicineName,
		ExpectedDate: data.ExpectedDate,
		Status:       entity.RequestStatus(data.Status),
	}

	if data.Customer != nil {
		request.CustomerName = data.Customer.FirstName + " " + data.Customer.LastName
	}

	return request
}

func toRequestDomains(requestModels []*model.CustomerRequestModel) []*entity.CustomerRequest {
	requests := make([]*entity.CustomerRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

// fromRequestDomain converts a domain CustomerRequest entity to a GORM CustomerRequestModel.
func fromRequestDomain(data *entity.CustomerRequest) *model.CustomerRequestModel {
	if data == nil {
		return nil
	}

	return &model.CustomerRequestModel{
		RequestID:    data.RequestID,
		CustomerID:   data.CustomerID,
		MedicineName: data.MedicineName,
		ExpectedDate: data.ExpectedDate,
		Status:       data.Status.String(),
	}
}
