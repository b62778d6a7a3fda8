package usecase

import (
	"context"
	"time"

	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/domain/repository"
	apperrors "campushub/internal/shared/errors"
	"campushub/internal/shared/eventbus"
	"campushub/internal/shared/logger"

	"go.uber.org/zap"
)

// PaymentUsecaseInterface defines the contract for payment operations.
type PaymentUsecaseInterface interface {
	CreatePaymentIntent(ctx context.Context, price float64) (clientSecret string, err error)
	ListPayments(ctx context.Context) ([]model.Payment, error)
	ListPaymentsByEmail(ctx context.Context, email string) ([]model.Payment, error)
	RecordPayment(ctx context.Context, payment *model.Payment) (string, error)
}

// PaymentUsecase implements payment operations.
type PaymentUsecase struct {
	payments repository.PaymentRepository
	intents  repository.PaymentIntentService
	bus      eventbus.EventBusInterface
	log      logger.Logger
}

// NewPaymentUsecase creates a new PaymentUsecase. The intent service may be
// nil when the provider key is not configured.
func NewPaymentUsecase(
	payments repository.PaymentRepository,
	intents repository.PaymentIntentService,
	bus eventbus.EventBusInterface,
	log logger.Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		payments: payments,
		intents:  intents,
		bus:      bus,
		log:      log.WithComponent("payment_usecase"),
	}
}

// CreatePaymentIntent asks the provider for an intent over the price
// converted to cents.
func (uc *PaymentUsecase) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if uc.intents == nil {
		return "", ErrPaymentsDisabled
	}

	amount := int64(price * 100)
	clientSecret, err := uc.intents.CreateIntent(ctx, amount)
	if err != nil {
		uc.log.Error("Failed to create payment intent", zap.Float64("price", price), zap.Error(err))
		return "", apperrors.WrapError(err, "failed to create payment intent")
	}
	return clientSecret, nil
}

func (uc *PaymentUsecase) ListPayments(ctx context.Context) ([]model.Payment, error) {
	return uc.payments.ListPayments(ctx)
}

func (uc *PaymentUsecase) ListPaymentsByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return uc.payments.ListPaymentsByEmail(ctx, email)
}

// RecordPayment appends a payment record and announces it on the event bus.
func (uc *PaymentUsecase) RecordPayment(ctx context.Context, payment *model.Payment) (string, error) {
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}

	insertedID, err := uc.payments.InsertPayment(ctx, payment)
	if err != nil {
		uc.log.Error("Failed to record payment", zap.String("email", payment.Email), zap.Error(err))
		return "", apperrors.WrapError(err, "failed to record payment")
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewEvent(EventPaymentRecorded, "catering", map[string]interface{}{
		"paymentId":     insertedID,
		"email":         payment.Email,
		"transactionId": payment.TransactionID,
	}))
	return insertedID, nil
}
