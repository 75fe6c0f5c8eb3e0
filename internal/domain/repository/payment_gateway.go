package repository

import "context"

// StandardPrice selects a pre-registered processor price id
type StandardPrice struct {
	PriceID string
}

// PromoPrice is a dynamically priced recurring line item in minor currency
// units. UnitAmount * quantity must reconstruct the discounted total to
// within one minor unit.
type PromoPrice struct {
	UnitAmount  int64
	Currency    string
	Description string
}

// CheckoutLine is the single line item of a checkout session. Exactly one of
// Standard or Promo is set.
type CheckoutLine struct {
	Quantity int64
	Standard *StandardPrice
	Promo    *PromoPrice
}

// CheckoutSessionSpec describes a subscription-mode checkout session. The
// metadata is the sole audit trail linking the payment event back to
// lottery-domain data.
type CheckoutSessionSpec struct {
	CustomerID    string // reuse an existing processor customer when set
	CustomerEmail string // otherwise the processor creates one from the email
	Line          CheckoutLine
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// PaymentGateway wraps the external payment processor
type PaymentGateway interface {
	// FindCustomerByEmail returns the id of the first customer with an exact
	// email match, or "" when none exists.
	FindCustomerByEmail(ctx context.Context, email string) (string, error)
	// CreateSubscriptionCheckout creates the session and returns its hosted
	// redirect URL. Single atomic remote call; no partial state on failure.
	CreateSubscriptionCheckout(ctx context.Context, spec CheckoutSessionSpec) (string, error)
}
