package postgres

import (
	"context"
	"time"

	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create persists a new payment record.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCheckoutFailed.WrapMessage("payment id collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("unknown customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// Exists reports whether a payment with the given ID already exists.
func (repo *paymentRepository) Exists(ctx context.Context, paymentID string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_id = ?", paymentID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check payment id")
	}

	return count > 0, nil
}

// FindByID retrieves a payment by its ID.
func (repo *paymentRepository) FindByID(ctx context.Context, paymentID string) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindAssigned retrieves a payment only when it is currently assigned to the
// given courier. A payment assigned to someone else reads as not found.
func (repo *paymentRepository) FindAssigned(ctx context.Context, paymentID, staffID string) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("payment_id = ? AND delivery_staff_id = ?", paymentID, staffID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assigned payment")
	}

	return toPaymentDomain(&paymentM), nil
}

// SetAssignee sets the courier on a payment without touching its status.
func (repo *paymentRepository) SetAssignee(ctx context.Context, paymentID, staffID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_id = ?", paymentID).
		Update("delivery_staff_id", staffID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set payment assignee")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// Accept marks the payment accepted for delivery on the given date.
func (repo *paymentRepository) Accept(ctx context.Context, paymentID string, deliveryDate time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_id = ?", paymentID).
		Updates(map[string]any{
			"status":        entity.StatusAcceptedForDelivery.String(),
			"delivery_date": deliveryDate,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to accept payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// Decline clears the assignee and resets the status to Pending Assignment.
func (repo *paymentRepository) Decline(ctx context.Context, paymentID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_id = ?", paymentID).
		Updates(map[string]any{
			"status":            entity.StatusPendingAssignment.String(),
			"delivery_staff_id": nil,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decline payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// MarkDelivered moves the payment to its terminal Delivered status.
func (repo *paymentRepository) MarkDelivered(ctx context.Context, paymentID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_id = ?", paymentID).
		Update("status", entity.StatusDelivered.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark payment delivered")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// ListAll returns every payment with customer and courier info, newest first.
func (repo *paymentRepository) ListAll(ctx context.Context) ([]*entity.PaymentSummary, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("DeliveryStaff").
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return toPaymentSummaries(paymentModels), nil
}

// ListByStaff returns payments assigned to a courier, newest first.
func (repo *paymentRepository) ListByStaff(ctx context.Context, staffID string) ([]*entity.PaymentSummary, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("DeliveryStaff").
		Where("delivery_staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments by staff")
	}

	return toPaymentSummaries(paymentModels), nil
}

// ListByCustomer returns a customer's payments, newest first.
func (repo *paymentRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments by customer")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		PaymentID:       data.PaymentID,
		CustomerID:      data.CustomerID,
		Amount:          data.Amount,
		PaymentType:     data.PaymentType,
		DeliveryStaffID: data.DeliveryStaffID,
		Status:          entity.PaymentStatus(data.Status),
		DeliveryDate:    data.DeliveryDate,
		CreatedAt:       data.CreatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		PaymentID:       data.PaymentID,
		CustomerID:      data.CustomerID,
		Amount:          data.Amount,
		PaymentType:     data.PaymentType,
		DeliveryStaffID: data.DeliveryStaffID,
		Status:          data.Status.String(),
		DeliveryDate:    data.DeliveryDate,
	}
}

// toPaymentSummaries joins payments with the surrounding people for list views.
func toPaymentSummaries(paymentModels []*model.PaymentModel) []*entity.PaymentSummary {
	summaries := make([]*entity.PaymentSummary, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		summary := &entity.PaymentSummary{
			Payment: *toPaymentDomain(paymentM),
		}
		if paymentM.Customer != nil {
			summary.CustomerName = paymentM.Customer.FirstName + " " + paymentM.Customer.LastName
			summary.CustomerPhone = paymentM.Customer.Phone
			summary.CustomerAddress = paymentM.Customer.Address
		}
		if paymentM.DeliveryStaff != nil {
			summary.StaffName = paymentM.DeliveryStaff.FirstName + " " + paymentM.DeliveryStaff.LastName
			summary.StaffPhone = paymentM.DeliveryStaff.Phone
		}
		summaries = append(summaries, summary)
	}

	return summaries
}
