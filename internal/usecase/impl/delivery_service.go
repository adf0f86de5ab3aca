package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "drugweb/internal/delivery/context"
	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// DeliveryServiceParams holds dependencies for deliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Assign routes a payment to a courier. Assignment only sets the assignee;
// the payment keeps its current status until the courier responds.
func (srv *deliveryService) Assign(ctx context.Context, input *usecase.AssignDeliveryInput) (*usecase.AssignDeliveryOutput, error) {
	srv.log(ctx).Info("Assigning delivery", slog.String("paymentID", input.PaymentID), slog.String("staffID", input.StaffID))

	staff, err := srv.userRepo.FindByID(ctx, input.StaffID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("unknown delivery staff")
		}

		return nil, errors.Wrap(err, "failed to load delivery staff")
	}
	if staff.DeliveryProfile == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user does not hold the delivery role")
	}

	if err := srv.paymentRepo.SetAssignee(ctx, input.PaymentID, input.StaffID); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to assign payment")
	}

	return &usecase.AssignDeliveryOutput{
		PaymentID: input.PaymentID,
		StaffID:   input.StaffID,
		StaffName: staff.FullName(),
	}, nil
}

// Respond applies a courier's decision to one of their assignments. The
// payment must currently be assigned to the responding courier; the status
// update and the customer notification commit together.
func (srv *deliveryService) Respond(ctx context.Context, input *usecase.RespondDeliveryInput) error {
	srv.log(ctx).Info("Delivery response", slog.String("paymentID", input.PaymentID), slog.String("staffID", input.StaffID), slog.String("action", string(input.Action)))

	if !input.Action.IsValid() {
		return domainerrors.ErrInvalidAction
	}
	if input.Action == usecase.ActionAccept && input.DeliveryDate.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage("delivery date is required to accept")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentRepo()
		notificationRepo := repoFactory.NotificationRepo()

		payment, err := paymentRepo.FindAssigned(ctx, input.PaymentID, input.StaffID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return domainerrors.ErrDeliveryNotAssigned
			}

			return errors.Wrap(err, "failed to load assigned payment")
		}

		switch input.Action {
		case usecase.ActionAccept:
			if !payment.Status.CanTransitionTo(entity.StatusAcceptedForDelivery) {
				return domainerrors.ErrInvalidAction.WrapMessage("payment cannot be accepted in its current status")
			}
			if err := paymentRepo.Accept(ctx, input.PaymentID, input.DeliveryDate); err != nil {
				return errors.Wrap(err, "failed to accept delivery")
			}

			return notificationRepo.Append(ctx, &entity.Notification{
				CustomerID: payment.CustomerID,
				Message:    fmt.Sprintf("Your order %s has been accepted and will be delivered on %s.", payment.PaymentID, input.DeliveryDate.Format("2006-01-02")),
				Type:       entity.NotificationDeliveryAccepted,
			})

		case usecase.ActionDecline:
			if !payment.Status.CanTransitionTo(entity.StatusPendingAssignment) {
				return domainerrors.ErrInvalidAction.WrapMessage("payment cannot be declined in its current status")
			}
			if err := paymentRepo.Decline(ctx, input.PaymentID); err != nil {
				return errors.Wrap(err, "failed to decline delivery")
			}

			return notificationRepo.Append(ctx, &entity.Notification{
				CustomerID: payment.CustomerID,
				Message:    fmt.Sprintf("Delivery for order %s was declined and will be reassigned shortly.", payment.PaymentID),
				Type:       entity.NotificationDeliveryDeclined,
			})

		case usecase.ActionDelivered:
			if !payment.Status.CanTransitionTo(entity.StatusDelivered) {
				return domainerrors.ErrInvalidAction.WrapMessage("payment is not out for delivery")
			}
			if err := paymentRepo.MarkDelivered(ctx, input.PaymentID); err != nil {
				return errors.Wrap(err, "failed to mark delivered")
			}

			return notificationRepo.Append(ctx, &entity.Notification{
				CustomerID: payment.CustomerID,
				Message:    fmt.Sprintf("Your order %s has been delivered. Thank you for shopping with us!", payment.PaymentID),
				Type:       entity.NotificationDeliveryCompleted,
			})

		default:
			return domainerrors.ErrInvalidAction
		}
	})

	if err != nil {
		srv.log(ctx).Warn("Delivery response failed", slog.String("paymentID", input.PaymentID), slog.String("staffID", input.StaffID), slog.Any("error", err))

		return err
	}

	return nil
}

// ListAssignments returns the courier's payments, newest first.
func (srv *deliveryService) ListAssignments(ctx context.Context, staffID string) ([]*entity.PaymentSummary, error) {
	payments, err := srv.paymentRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assignments")
	}

	return payments, nil
}

// ListAllPayments returns every payment for the admin dashboard.
func (srv *deliveryService) ListAllPayments(ctx context.Context) ([]*entity.PaymentSummary, error) {
	payments, err := srv.paymentRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// ListCustomerPayments returns a customer's own order history.
func (srv *deliveryService) ListCustomerPayments(ctx context.Context, customerID string) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer payments")
	}

	return payments, nil
}

// ListStaff returns every courier so admins can pick an assignee.
func (srv *deliveryService) ListStaff(ctx context.Context) ([]*entity.User, error) {
	staff, err := srv.userRepo.ListDeliveryStaff(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery staff")
	}

	return staff, nil
}
