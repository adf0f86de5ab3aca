package impl

import (
	"context"
	"log/slog"

	deliverycontext "drugweb/internal/delivery/context"
	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	requestRepo repository.RequestRepository
	logger      *slog.Logger
}

// RequestServiceParams holds dependencies for requestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	Logger      *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo: params.RequestRepo,
		logger:      params.Logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records a customer's ask for a medicine the catalog lacks. New
// requests always start Pending.
func (srv *requestService) Submit(ctx context.Context, input *usecase.SubmitRequestInput) (*entity.CustomerRequest, error) {
	if input.MedicineName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("medicine name is required")
	}

	request := &entity.CustomerRequest{
		CustomerID:   input.CustomerID,
		MedicineName: input.MedicineName,
		ExpectedDate: input.ExpectedDate,
		Status:       entity.RequestPending,
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		srv.log(ctx).Error("Failed to submit request", slog.String("customerID", input.CustomerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to submit request")
	}

	srv.log(ctx).Debug("Request submitted", slog.String("customerID", input.CustomerID), slog.String("medicineName", input.MedicineName))

	return request, nil
}

// Decide applies an admin triage decision. Decisions address requests by the
// (customer, medicine name) pair; a later decision overwrites an earlier one.
func (srv *requestService) Decide(ctx context.Context, input *usecase.DecideRequestInput) error {
	if input.Status != entity.RequestAccepted && input.Status != entity.RequestDeclined {
		return domainerrors.ErrValidationFailed.WrapMessage("decision must be Accepted or Declined")
	}

	if err := srv.requestRepo.UpdateStatus(ctx, input.CustomerID, input.MedicineName, input.Status); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to update request status")
	}

	srv.log(ctx).Info("Request decided",
		slog.String("customerID", input.CustomerID),
		slog.String("medicineName", input.MedicineName),
		slog.String("status", input.Status.String()),
	)

	return nil
}

// ListAll returns every request for the admin triage view.
func (srv *requestService) ListAll(ctx context.Context) ([]*entity.CustomerRequest, error) {
	requests, err := srv.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// ListMine returns the calling customer's own requests.
func (srv *requestService) ListMine(ctx context.Context, customerID string) ([]*entity.CustomerRequest, error) {
	requests, err := srv.requestRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer requests")
	}

	return requests, nil
}
