package impl

import (
	"context"
	"fmt"
	"log/slog"

	"drugweb/config"
	deliverycontext "drugweb/internal/delivery/context"
	"drugweb/internal/domain/entity"
	domainerrors "drugweb/internal/domain/errors"
	"drugweb/internal/domain/repository"
	"drugweb/internal/domain/service"
	"drugweb/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	paymentIDDigits      = 6
	paymentIDWideDigits  = 8
	defaultMaxIDAttempts = 5
	defaultEarnDivisor   = 10
)

// checkoutService implements the CheckoutUsecase interface. Everything a
// checkout writes (payment, points, notification, cart wipe) shares a single
// transaction.
type checkoutService struct {
	txManager     repository.TransactionManager
	cartRepo      repository.CartRepository
	idGenerator   service.PaymentIDGenerator
	earnDivisor   int64
	maxIDAttempts int
	logger        *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	IDGenerator service.PaymentIDGenerator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	earnDivisor := int64(defaultEarnDivisor)
	maxIDAttempts := defaultMaxIDAttempts
	if params.Config != nil {
		if params.Config.Loyalty != nil && params.Config.Loyalty.EarnDivisor > 0 {
			earnDivisor = params.Config.Loyalty.EarnDivisor
		}
		if params.Config.Checkout != nil && params.Config.Checkout.MaxIDAttempts > 0 {
			maxIDAttempts = params.Config.Checkout.MaxIDAttempts
		}
	}

	return &checkoutService{
		txManager:     params.TxManager,
		cartRepo:      params.CartRepo,
		idGenerator:   params.IDGenerator,
		earnDivisor:   earnDivisor,
		maxIDAttempts: maxIDAttempts,
		logger:        params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the customer's cart into a payment. The cart lines are
// locked and the total recomputed inside the transaction, so the committed
// amount always reflects the lines actually cleared.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	srv.log(ctx).Info("Starting checkout", slog.String("customerID", input.CustomerID), slog.String("paymentType", input.PaymentType))

	// Cheap precheck outside the transaction; the authoritative check runs
	// again on the locked lines.
	total, err := srv.cartRepo.TotalValue(ctx, input.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart total")
	}
	if !total.IsPositive() {
		return nil, domainerrors.ErrEmptyCart
	}

	var output *usecase.CheckoutOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		paymentRepo := repoFactory.PaymentRepo()
		pointsRepo := repoFactory.PointsRepo()
		notificationRepo := repoFactory.NotificationRepo()

		lines, err := cartRepo.ListForUpdate(ctx, input.CustomerID)
		if err != nil {
			return errors.Wrap(err, "failed to lock cart lines")
		}

		amount := decimal.Zero
		for _, line := range lines {
			amount = amount.Add(line.TotalPrice)
		}
		if !amount.IsPositive() {
			return domainerrors.ErrEmptyCart
		}

		paymentID, err := srv.reservePaymentID(ctx, paymentRepo)
		if err != nil {
			return err
		}

		payment := &entity.Payment{
			PaymentID:   paymentID,
			CustomerID:  input.CustomerID,
			Amount:      amount,
			PaymentType: input.PaymentType,
			Status:      entity.StatusAssigned,
		}
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}

		// Points accrue at one per whole earnDivisor units of spend.
		points := int(amount.Div(decimal.NewFromInt(srv.earnDivisor)).IntPart())
		if points > 0 {
			if err := pointsRepo.IncrementBalance(ctx, input.CustomerID, points); err != nil {
				return errors.Wrap(err, "failed to credit points")
			}

			entry := &entity.PointsEntry{
				CustomerID:      input.CustomerID,
				PointsEarned:    points,
				TransactionType: entity.PointsTransactionEarned,
				PaymentID:       paymentID,
				Description:     fmt.Sprintf("Earned %d points for payment %s", points, paymentID),
			}
			if err := pointsRepo.AppendHistory(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to append points history")
			}
		}

		notification := &entity.Notification{
			CustomerID: input.CustomerID,
			Message:    fmt.Sprintf("Payment %s of $%s was successful. You earned %d points!", paymentID, amount.StringFixed(2), points),
			Type:       entity.NotificationPaymentSuccess,
		}
		if err := notificationRepo.Append(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to append payment notification")
		}

		if err := cartRepo.Clear(ctx, input.CustomerID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		output = &usecase.CheckoutOutput{
			PaymentID:    paymentID,
			Amount:       amount,
			PointsEarned: points,
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Checkout failed", slog.String("customerID", input.CustomerID), slog.Any("error", err))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrCheckoutFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Checkout committed",
		slog.String("customerID", input.CustomerID),
		slog.String("paymentID", output.PaymentID),
		slog.String("amount", output.Amount.StringFixed(2)),
		slog.Int("pointsEarned", output.PointsEarned),
	)

	return output, nil
}

// reservePaymentID draws candidate IDs until one is free. The first retry
// after a collision widens the ID to eight digits; a bounded number of
// attempts keeps a pathological store from spinning forever.
func (srv *checkoutService) reservePaymentID(ctx context.Context, paymentRepo repository.PaymentRepository) (string, error) {
	digits := paymentIDDigits
	for attempt := 0; attempt < srv.maxIDAttempts; attempt++ {
		candidate := srv.idGenerator.Generate(digits)

		exists, err := paymentRepo.Exists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check payment id")
		}
		if !exists {
			return candidate, nil
		}

		digits = paymentIDWideDigits
	}

	return "", domainerrors.ErrPaymentIDExhausted
}
