// Package payment adapts the external payment provider behind the
// PaymentIntentService port.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// StripeIntentService creates card payment intents through the Stripe API.
type StripeIntentService struct{}

// NewStripeIntentService configures the Stripe client with the account
// secret and returns the service. The key is process-global in the Stripe
// SDK, so construct this once at wiring time.
func NewStripeIntentService(secretKey string) *StripeIntentService {
	stripe.Key = secretKey
	return &StripeIntentService{}
}

// CreateIntent opens a payment intent for the given amount in the smallest
// currency unit and returns its client secret for the browser-side
// confirmation flow.
func (s *StripeIntentService) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
