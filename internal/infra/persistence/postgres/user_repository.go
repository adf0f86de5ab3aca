// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user entity, including its attached role profiles.
// GORM's Create with associations inserts into users plus the profile tables
// within a single statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their business ID, preloading role profiles.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("AdminProfile").
		Preload("DeliveryProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading role profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("AdminProfile").
		Preload("DeliveryProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// customerIDAllocLock keys the advisory lock that serializes CMnnn
// allocation across concurrent registrations.
const customerIDAllocLock = 874201

// NextCustomerID allocates the next customer ID in the CMnnn sequence by
// scanning the current maximum. The max read alone is not enough at READ
// COMMITTED, where two registrations can see the same maximum, so the read
// is serialized behind a transaction-scoped advisory lock that Postgres
// releases at commit or rollback.
func (repo *userRepository) NextCustomerID(ctx context.Context) (string, error) {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", customerIDAllocLock).Error; err != nil {
		return "", errors.Wrap(err, "failed to lock customer id sequence")
	}

	var maxID *string

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("MAX(id)").
		Where("id LIKE ?", "CM%").
		Scan(&maxID).Error; err != nil {
		return "", errors.Wrap(err, "failed to query max customer id")
	}

	next := 1
	if maxID != nil && len(*maxID) > 2 {
		var n int
		if _, err := fmt.Sscanf((*maxID)[2:], "%d", &n); err == nil {
			next = n + 1
		}
	}

	return fmt.Sprintf("CM%03d", next), nil
}

// ListDeliveryStaff returns every user holding the delivery role.
func (repo *userRepository) ListDeliveryStaff(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("DeliveryProfile").
		Joins("JOIN delivery_staff ON delivery_staff.staff_id = users.id").
		Order("users.id").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery staff")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Address:      data.Address,
		Phone:        data.Phone,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.CustomerProfile != nil {
		user.CustomerProfile = &entity.CustomerProfile{
			CustomerID: data.CustomerProfile.CustomerID,
			Points:     data.CustomerProfile.Points,
			UpdatedAt:  data.CustomerProfile.UpdatedAt,
		}
	}
	if data.AdminProfile != nil {
		user.AdminProfile = &entity.AdminProfile{
			AdminID: data.AdminProfile.AdminID,
		}
	}
	if data.DeliveryProfile != nil {
		user.DeliveryProfile = &entity.DeliveryProfile{
			StaffID: data.DeliveryProfile.StaffID,
			Area:    data.DeliveryProfile.Area,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Address:      data.Address,
		Phone:        data.Phone,
	}

	if data.CustomerProfile != nil {
		userM.CustomerProfile = &model.CustomerProfileModel{
			CustomerID: data.CustomerProfile.CustomerID,
			Points:     data.CustomerProfile.Points,
		}
	}
	if data.AdminProfile != nil {
		userM.AdminProfile = &model.AdminProfileModel{
			AdminID: data.AdminProfile.AdminID,
		}
	}
	if data.DeliveryProfile != nil {
		userM.DeliveryProfile = &model.DeliveryProfileModel{
			StaffID: data.DeliveryProfile.StaffID,
			Area:    data.DeliveryProfile.Area,
		}
	}

	return userM
}
