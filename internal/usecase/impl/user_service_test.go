package impl

import (
	"context"
	"testing"
	"time"

	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService issues fixed tokens for assertion.
type stubTokenService struct{}

func (stubTokenService) GenerateTokens(userID string, _ []string) (string, string, error) {
	return "access-" + userID, "refresh-" + userID, nil
}

func (stubTokenService) ValidateToken(_ string, _ string) (*jwt.Token, error) {
	return nil, jwt.ErrTokenMalformed
}

func (stubTokenService) GetRefreshTokenDuration() time.Duration {
	return time.Hour
}

type userFixture struct {
	service    *userService
	userRepo   *memUserRepo
	pointsRepo *memPointsRepo
}

func newUserFixture() *userFixture {
	userRepo := newMemUserRepo()
	pointsRepo := newMemPointsRepo()

	factory := &memFactory{
		cartRepo:         newMemCartRepo(),
		paymentRepo:      newMemPaymentRepo(),
		pointsRepo:       pointsRepo,
		notificationRepo: newMemNotificationRepo(),
		userRepo:         userRepo,
	}

	service := &userService{
		txManager:    &memTxManager{factory: factory},
		userRepo:     userRepo,
		pointsRepo:   pointsRepo,
		hasher:       plainHasher{},
		tokenService: stubTokenService{},
		logger:       testLogger(),
	}

	return &userFixture{
		service:    service,
		userRepo:   userRepo,
		pointsRepo: pointsRepo,
	}
}

func registerInput(email string) *usecase.RegisterCustomerInput {
	return &usecase.RegisterCustomerInput{
		FirstName: "Casey",
		LastName:  "Moore",
		Email:     email,
		Password:  "password123",
		Address:   "12 High Street",
		Phone:     "0123456789",
	}
}

func TestRegisterCustomer_AllocatesSequentialIDs(t *testing.T) {
	fixture := newUserFixture()

	first, err := fixture.service.RegisterCustomer(context.Background(), registerInput("one@test.dev"))
	require.NoError(t, err)
	assert.Equal(t, "CM001", first.User.ID)
	require.NotNil(t, first.User.CustomerProfile)
	assert.Equal(t, "CM001", first.User.CustomerProfile.CustomerID)

	second, err := fixture.service.RegisterCustomer(context.Background(), registerInput("two@test.dev"))
	require.NoError(t, err)
	assert.Equal(t, "CM002", second.User.ID)
}

func TestRegisterCustomer_DuplicateEmail(t *testing.T) {
	fixture := newUserFixture()

	_, err := fixture.service.RegisterCustomer(context.Background(), registerInput("dup@test.dev"))
	require.NoError(t, err)

	_, err = fixture.service.RegisterCustomer(context.Background(), registerInput("dup@test.dev"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestRegisterCustomer_NeverStoresPlaintextPassword(t *testing.T) {
	fixture := newUserFixture()

	output, err := fixture.service.RegisterCustomer(context.Background(), registerInput("hash@test.dev"))
	require.NoError(t, err)

	assert.NotEqual(t, "password123", output.User.PasswordHash)
	assert.NotEmpty(t, output.User.PasswordHash)
}

func TestLogin_IssuesTokensForHeldRole(t *testing.T) {
	fixture := newUserFixture()

	_, err := fixture.service.RegisterCustomer(context.Background(), registerInput("login@test.dev"))
	require.NoError(t, err)

	output, err := fixture.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "login@test.dev",
		Password: "password123",
		Role:     entity.RoleCustomer,
	})
	require.NoError(t, err)

	assert.Equal(t, "access-CM001", output.AccessToken)
	assert.Equal(t, "refresh-CM001", output.RefreshToken)
	assert.Equal(t, "CM001", output.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	fixture := newUserFixture()

	_, err := fixture.service.RegisterCustomer(context.Background(), registerInput("login@test.dev"))
	require.NoError(t, err)

	_, err = fixture.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "login@test.dev",
		Password: "wrong",
		Role:     entity.RoleCustomer,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	fixture := newUserFixture()

	_, err := fixture.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "ghost@test.dev",
		Password: "password123",
		Role:     entity.RoleCustomer,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_RoleNotHeldIsForbidden(t *testing.T) {
	fixture := newUserFixture()

	_, err := fixture.service.RegisterCustomer(context.Background(), registerInput("login@test.dev"))
	require.NoError(t, err)

	// A customer account cannot enter the admin portal.
	_, err = fixture.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "login@test.dev",
		Password: "password123",
		Role:     entity.RoleAdmin,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProfile_IncludesPointBalance(t *testing.T) {
	fixture := newUserFixture()

	output, err := fixture.service.RegisterCustomer(context.Background(), registerInput("points@test.dev"))
	require.NoError(t, err)

	fixture.pointsRepo.balances[output.User.ID] = 42

	profile, err := fixture.service.Profile(context.Background(), output.User.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, profile.Points)
	assert.Equal(t, "Casey Moore", profile.User.FullName())
}

func TestProfile_UnknownUser(t *testing.T) {
	fixture := newUserFixture()

	_, err := fixture.service.Profile(context.Background(), "CM404")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
