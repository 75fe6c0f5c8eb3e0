package stripe

import (
	"context"
	"fmt"

	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/customer"
	"go.uber.org/zap"
)

// Gateway implements the PaymentGateway interface for Stripe
type Gateway struct {
	logger *zap.Logger
}

// NewGateway configures the global Stripe client and returns a gateway
func NewGateway(secretKey string, logger *zap.Logger) *Gateway {
	stripe.Key = secretKey
	return &Gateway{
		logger: logger,
	}
}

var _ repository.PaymentGateway = (*Gateway)(nil)

// FindCustomerByEmail returns the id of the first customer with an exact
// email match, or "" when none exists.
func (g *Gateway) FindCustomerByEmail(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	params.Limit = stripe.Int64(1)

	iter := customer.List(params)
	if iter.Next() {
		c := iter.Customer()
		g.logger.Debug("Reusing existing Stripe customer",
			zap.String("customer_id", c.ID))
		return c.ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("error listing customers: %w", err)
	}
	return "", nil
}

// CreateSubscriptionCheckout creates a subscription-mode checkout session and
// returns its hosted redirect URL.
func (g *Gateway) CreateSubscriptionCheckout(ctx context.Context, spec repository.CheckoutSessionSpec) (string, error) {
	lineItem := &stripe.CheckoutSessionLineItemParams{
		Quantity: stripe.Int64(spec.Line.Quantity),
	}

	switch {
	case spec.Line.Promo != nil:
		lineItem.PriceData = &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(spec.Line.Promo.Currency),
			UnitAmount: stripe.Int64(spec.Line.Promo.UnitAmount),
			Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
				Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
			},
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(spec.Line.Promo.Description),
			},
		}
	case spec.Line.Standard != nil:
		lineItem.Price = stripe.String(spec.Line.Standard.PriceID)
	default:
		return "", fmt.Errorf("checkout line has no price variant")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems:  []*stripe.CheckoutSessionLineItemParams{lineItem},
		SuccessURL: stripe.String(spec.SuccessURL),
		CancelURL:  stripe.String(spec.CancelURL),
	}
	if spec.CustomerID != "" {
		params.Customer = stripe.String(spec.CustomerID)
	} else {
		params.CustomerEmail = stripe.String(spec.CustomerEmail)
	}
	for key, value := range spec.Metadata {
		params.AddMetadata(key, value)
	}

	session, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("error creating checkout session: %w", err)
	}

	g.logger.Info("Checkout session created",
		zap.String("session_id", session.ID),
		zap.Int64("quantity", spec.Line.Quantity))
	return session.URL, nil
}
