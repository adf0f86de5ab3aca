package impl

import (
	"context"
	"testing"
	"time"

	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deliveryFixture struct {
	service          *deliveryService
	paymentRepo      *memPaymentRepo
	notificationRepo *memNotificationRepo
	userRepo         *memUserRepo
}

func newDeliveryFixture() *deliveryFixture {
	paymentRepo := newMemPaymentRepo()
	notificationRepo := newMemNotificationRepo()
	userRepo := newMemUserRepo()

	_ = userRepo.Create(context.Background(), &entity.User{
		ID:              "DM001",
		FirstName:       "Dana",
		LastName:        "Miles",
		Email:           "dana@pharmacy.test",
		DeliveryProfile: &entity.DeliveryProfile{StaffID: "DM001", Area: "North"},
	})
	_ = userRepo.Create(context.Background(), &entity.User{
		ID:        "AD001",
		FirstName: "Alex",
		LastName:  "Dole",
		Email:     "alex@pharmacy.test",
		AdminProfile: &entity.AdminProfile{
			AdminID: "AD001",
		},
	})

	factory := &memFactory{
		cartRepo:         newMemCartRepo(),
		paymentRepo:      paymentRepo,
		pointsRepo:       newMemPointsRepo(),
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}

	service := &deliveryService{
		txManager:   &memTxManager{factory: factory},
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		logger:      testLogger(),
	}

	return &deliveryFixture{
		service:          service,
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (f *deliveryFixture) seedPayment(paymentID string, status entity.PaymentStatus, staffID *string) {
	_ = f.paymentRepo.Create(context.Background(), &entity.Payment{
		PaymentID:       paymentID,
		CustomerID:      "CM001",
		Amount:          decimal.RequireFromString("25.00"),
		PaymentType:     "cash",
		DeliveryStaffID: staffID,
		Status:          status,
	})
}

func TestAssign_SetsAssigneeWithoutTouchingStatus(t *testing.T) {
	fixture := newDeliveryFixture()
	fixture.seedPayment("PAY100001", entity.StatusAssigned, nil)

	output, err := fixture.service.Assign(context.Background(), &usecase.AssignDeliveryInput{
		PaymentID: "PAY100001",
		StaffID:   "DM001",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dana Miles", output.StaffName)

	payment := fixture.paymentRepo.payments["PAY100001"]
	require.NotNil(t, payment.DeliveryStaffID)
	assert.Equal(t, "DM001", *payment.DeliveryStaffID)
	// Routing a payment never changes its status.
	assert.Equal(t, entity.StatusAssigned, payment.Status)
}

func TestAssign_ReassignAfterDeclineKeepsPendingStatus(t *testing.T) {
	fixture := newDeliveryFixture()
	fixture.seedPayment("PAY100001", entity.StatusPendingAssignment, nil)

	_, err := fixture.service.Assign(context.Background(), &usecase.AssignDeliveryInput{
		PaymentID: "PAY100001",
		StaffID:   "DM001",
	})
	require.NoError(t, err)

	payment := fixture.paymentRepo.payments["PAY100001"]
	assert.Equal(t, entity.StatusPendingAssignment, payment.Status)
}

func TestAssign_RejectsNonDeliveryUser(t *testing.T) {
	fixture := newDeliveryFixture()
	fixture.seedPayment("PAY100001", entity.StatusAssigned, nil)

	_, err := fixture.service.Assign(context.Background(), &usecase.AssignDeliveryInput{
		PaymentID: "PAY100001",
		StaffID:   "AD001",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssign_UnknownPayment(t *testing.T) {
	fixture := newDeliveryFixture()

	_, err := fixture.service.Assign(context.Background(), &usecase.AssignDeliveryInput{
		PaymentID: "PAY999999",
		StaffID:   "DM001",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestRespond_AcceptSetsStatusDateAndNotifiesOnce(t *testing.T) {
	fixture := newDeliveryFixture()
	staffID := "DM001"
	fixture.seedPayment("PAY100001", entity.StatusAssigned, &staffID)

	deliveryDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	err := fixture.service.Respond(context.Background(), &usecase.RespondDeliveryInput{
		PaymentID:    "PAY100001",
		StaffID:      "DM001",
		Action:       usecase.ActionAccept,
		DeliveryDate: deliveryDate,
	})
	require.NoError(t, err)

	payment := fixture.paymentRepo.payments["PAY100001"]
	assert.Equal(t, entity.StatusAcceptedForDelivery, payment.Status)
	require.NotNil(t, payment.DeliveryDate)
	assert.Equal(t, deliveryDate, *payment.DeliveryDate)

	require.Len(t, fixture.notificationRepo.notifications, 1)
	notification := fixture.notificationRepo.notifications[0]
	assert.Equal(t, "CM001", notification.CustomerID)
	assert.Equal(t, entity.NotificationDeliveryAccepted, notification.Type)
}

func TestRespond_AcceptRequiresDeliveryDate(t *testing.T) {
	fixture := newDeliveryFixture()
	staffID := "DM001"
	fixture.seedPayment("PAY100001", entity.StatusAssigned, &staffID)

	err := fixture.service.Respond(context.Background(), &usecase.RespondDeliveryInput{
		PaymentID: "PAY100001",
		StaffID:   "DM001",
		Action:    usecase.ActionAccept,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRespond_DeclineClearsAssigneeAndNotifies(t *testing.T) {
	fixture := newDeliveryFixture()
	staffID := "DM001"
	fixture.seedPayment("PAY100001", entity.StatusAssigned, &staffID)

	err := fixture.service.Respond(context.Background(), &usecase.RespondDeliveryInput{
		PaymentID: "PAY100001",
		StaffID:   "DM001",
		Action:    usecase.ActionDecline,
	})
	require.NoError(t, err)

	payment := fixture.paymentRepo.payments["PAY100001"]
	assert.Equal(t, entity.StatusPendingAssignment, payment.Status)
	assert.Nil(t, payment.DeliveryStaffID)

	require.Len(t, fixture.notificationRepo.notifications, 1)
	assert.Equal(t, entity.NotificationDeliveryDeclined, fixture.notificationRepo.notifications[0].Type)
}

func TestRespond_WrongStaffCannotAct(t *testing.T) {
	fixture := newDeliveryFixture()
	staffID := "DM002"
	fixture.seedPayment("PAY100001", entity.StatusAssigned, &staffID)

	err := fixture.service.Respond(context.Background(), &usecase.RespondDeliveryInput{
		PaymentID:    "PAY100001",
		StaffID:      "DM001",
		Action:       usecase.ActionAccept,
		DeliveryDate: time.Now(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryNotAssigned)
	// No notification when the action is rejected.
	assert.Empty(t, fixture.notificationRepo.notifications)
}

func TestRespond_DeliveredOnlyFromAccepted(t *testing.T) {
	fixture := newDeliveryFixture()
	staffID := "DM001"
	fixture.seedPayment("PAY100001", entity.StatusAssigned, &staffID)

	err := fixture.service.Respond(context.Background(), &usecase.RespondDeliveryInput{
		PaymentID: "PAY100001",
		StaffID:   "DM001",
		Action:    usecase.ActionDelivered,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)

	// After accepting, delivered succeeds and is terminal.
	err = fixture.service.Respond(context.Background(), &usecase.RespondDeliveryInput{
		PaymentID:    "PAY100001",
		StaffID:      "DM001",
		Action:       usecase.ActionAccept,
		DeliveryDate: time.Now(),
	})
	require.NoError(t, err)

	err = fixture.service.Respond(context.Background(), &usecase.RespondDeliveryInput{
		PaymentID: "PAY100001",
		StaffID:   "DM001",
		Action:    usecase.ActionDelivered,
	})
	require.NoError(t, err)

	payment := fixture.paymentRepo.payments["PAY100001"]
	assert.Equal(t, entity.StatusDelivered, payment.Status)

	err = fixture.service.Respond(context.Background(), &usecase.RespondDeliveryInput{
		PaymentID: "PAY100001",
		StaffID:   "DM001",
		Action:    usecase.ActionDelivered,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
}

func TestRespond_UnknownAction(t *testing.T) {
	fixture := newDeliveryFixture()

	err := fixture.service.Respond(context.Background(), &usecase.RespondDeliveryInput{
		PaymentID: "PAY100001",
		StaffID:   "DM001",
		Action:    usecase.DeliveryAction("teleport"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
}

func TestListStaff_ReturnsCouriersOnly(t *testing.T) {
	fixture := newDeliveryFixture()

	staff, err := fixture.service.ListStaff(context.Background())
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "DM001", staff[0].ID)
}
