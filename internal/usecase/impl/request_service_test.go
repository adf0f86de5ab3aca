package impl

import (
	"context"
	"testing"
	"time"

	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestFixture() (*requestService, *memRequestRepo) {
	requestRepo := newMemRequestRepo()
	service := &requestService{
		requestRepo: requestRepo,
		logger:      testLogger(),
	}

	return service, requestRepo
}

func TestSubmitRequest_StartsPending(t *testing.T) {
	service, _ := newRequestFixture()

	request, err := service.Submit(context.Background(), &usecase.SubmitRequestInput{
		CustomerID:   "CM001",
		MedicineName: "Zyrtec",
		ExpectedDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RequestPending, request.Status)
	assert.NotZero(t, request.RequestID)
}

func TestSubmitRequest_RequiresMedicineName(t *testing.T) {
	service, _ := newRequestFixture()

	_, err := service.Submit(context.Background(), &usecase.SubmitRequestInput{
		CustomerID: "CM001",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDecideRequest_OverwritesEarlierDecision(t *testing.T) {
	service, requestRepo := newRequestFixture()

	_, err := service.Submit(context.Background(), &usecase.SubmitRequestInput{
		CustomerID:   "CM001",
		MedicineName: "Zyrtec",
	})
	require.NoError(t, err)

	err = service.Decide(context.Background(), &usecase.DecideRequestInput{
		CustomerID:   "CM001",
		MedicineName: "Zyrtec",
		Status:       entity.RequestAccepted,
	})
	require.NoError(t, err)

	stored, err := requestRepo.FindByCustomerAndName(context.Background(), "CM001", "Zyrtec")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestAccepted, stored.Status)

	// A later decision simply overwrites the earlier one.
	err = service.Decide(context.Background(), &usecase.DecideRequestInput{
		CustomerID:   "CM001",
		MedicineName: "Zyrtec",
		Status:       entity.RequestDeclined,
	})
	require.NoError(t, err)

	stored, err = requestRepo.FindByCustomerAndName(context.Background(), "CM001", "Zyrtec")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestDeclined, stored.Status)
}

func TestDecideRequest_UpdatesEveryMatchingRow(t *testing.T) {
	service, requestRepo := newRequestFixture()

	// The same customer asked for the same medicine twice.
	for range 2 {
		_, err := service.Submit(context.Background(), &usecase.SubmitRequestInput{
			CustomerID:   "CM001",
			MedicineName: "Zyrtec",
		})
		require.NoError(t, err)
	}

	err := service.Decide(context.Background(), &usecase.DecideRequestInput{
		CustomerID:   "CM001",
		MedicineName: "Zyrtec",
		Status:       entity.RequestAccepted,
	})
	require.NoError(t, err)

	all, err := requestRepo.ListByCustomer(context.Background(), "CM001")
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, request := range all {
		assert.Equal(t, entity.RequestAccepted, request.Status)
	}
}

func TestDecideRequest_UnknownPair(t *testing.T) {
	service, _ := newRequestFixture()

	err := service.Decide(context.Background(), &usecase.DecideRequestInput{
		CustomerID:   "CM001",
		MedicineName: "Nothing",
		Status:       entity.RequestAccepted,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

func TestDecideRequest_RejectsPendingAsDecision(t *testing.T) {
	service, _ := newRequestFixture()

	err := service.Decide(context.Background(), &usecase.DecideRequestInput{
		CustomerID:   "CM001",
		MedicineName: "Zyrtec",
		Status:       entity.RequestPending,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
