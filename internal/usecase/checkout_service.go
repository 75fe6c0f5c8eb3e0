package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	domainErrors "github.com/goldenclub/lottery-service/internal/domain/errors"
	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
)

// Marker stored in checkout session metadata so the webhook can recognize
// lottery subscription purchases among other processor events.
const EntryTypeSubscription = "lottery_subscription"

const checkoutCurrency = "eur"

// LotteryLine is one line of chosen numbers in a subscription request
type LotteryLine struct {
	Numbers []int `json:"numbers" validate:"required,min=1"`
}

// CheckoutRequest is a subscription purchase request. If PromoCode is set,
// DiscountedAmount must be present and must not exceed OriginalAmount.
type CheckoutRequest struct {
	PriceID          string           `json:"priceId" validate:"required"`
	Quantity         int64            `json:"quantity" validate:"required,gt=0"`
	LotteryLines     []LotteryLine    `json:"lotteryLines" validate:"required,min=1,dive"`
	PromoCode        string           `json:"promoCode"`
	OriginalAmount   *decimal.Decimal `json:"originalAmount"`
	DiscountedAmount *decimal.Decimal `json:"discountedAmount"`
	Origin           string           `json:"-"`
}

// CheckoutResult holds the processor's hosted redirect URL
type CheckoutResult struct {
	URL string `json:"url"`
}

// CheckoutService turns subscription requests into priced checkout sessions
// with the payment processor, reusing an existing customer when one exists.
type CheckoutService struct {
	identity repository.IdentityRepository
	gateway  repository.PaymentGateway
	logger   *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(identity repository.IdentityRepository, gateway repository.PaymentGateway, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		identity: identity,
		gateway:  gateway,
		logger:   logger,
	}
}

// CreateSubscriptionCheckout resolves the caller from the token, prices the
// single line item and creates a subscription-mode checkout session. Any
// processor or identity-provider failure aborts the whole operation; session
// creation is a single atomic remote call, so no partial state is left behind.
func (s *CheckoutService) CreateSubscriptionCheckout(ctx context.Context, token string, req *CheckoutRequest) (*CheckoutResult, error) {
	if req.PriceID == "" || req.Quantity <= 0 || len(req.LotteryLines) == 0 {
		return nil, domainErrors.NewValidationError("priceId, quantity and lotteryLines are required")
	}
	if req.PromoCode != "" {
		if req.DiscountedAmount == nil {
			return nil, domainErrors.NewValidationError("discountedAmount is required when promoCode is set")
		}
		if req.OriginalAmount != nil && req.DiscountedAmount.GreaterThan(*req.OriginalAmount) {
			return nil, domainErrors.NewValidationError("discountedAmount must not exceed originalAmount")
		}
	}

	if token == "" {
		return nil, domainErrors.NewAuthenticationError("missing access token", nil)
	}
	user, err := s.identity.GetUserByToken(ctx, token)
	if err != nil {
		return nil, domainErrors.NewAuthenticationError("could not resolve caller identity", err)
	}
	if user.Email == "" {
		return nil, domainErrors.NewAuthenticationError("caller has no known email", nil)
	}

	customerID, err := s.gateway.FindCustomerByEmail(ctx, user.Email)
	if err != nil {
		return nil, domainErrors.NewUpstreamError("customer lookup failed", err)
	}

	lines, err := json.Marshal(req.LotteryLines)
	if err != nil {
		return nil, domainErrors.NewValidationError("lotteryLines are not serializable")
	}

	spec := repository.CheckoutSessionSpec{
		CustomerID:    customerID,
		CustomerEmail: user.Email,
		Line:          s.buildLine(req),
		Metadata: map[string]string{
			"user_id":           user.ID,
			"lottery_lines":     string(lines),
			"entry_type":        EntryTypeSubscription,
			"promo_code":        req.PromoCode,
			"original_amount":   amountString(req.OriginalAmount),
			"discounted_amount": amountString(req.DiscountedAmount),
		},
		SuccessURL: req.Origin + "/lottery/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  req.Origin + "/lottery?cancelled=true",
	}

	url, err := s.gateway.CreateSubscriptionCheckout(ctx, spec)
	if err != nil {
		return nil, domainErrors.NewUpstreamError("checkout session creation failed", err)
	}

	s.logger.Info("Checkout session created",
		zap.String("user_id", user.ID),
		zap.Int64("quantity", req.Quantity),
		zap.Bool("promo", req.PromoCode != ""))

	return &CheckoutResult{URL: url}, nil
}

// buildLine picks the promo-priced variant only when both a promo code and a
// discounted amount are supplied; discount fields are ignored otherwise.
func (s *CheckoutService) buildLine(req *CheckoutRequest) repository.CheckoutLine {
	if req.PromoCode != "" && req.DiscountedAmount != nil {
		return repository.CheckoutLine{
			Quantity: req.Quantity,
			Promo: &repository.PromoPrice{
				UnitAmount:  promoUnitAmount(*req.DiscountedAmount, req.Quantity),
				Currency:    checkoutCurrency,
				Description: fmt.Sprintf("Lottery subscription (promo %s)", req.PromoCode),
			},
		}
	}
	return repository.CheckoutLine{
		Quantity: req.Quantity,
		Standard: &repository.StandardPrice{PriceID: req.PriceID},
	}
}

// promoUnitAmount converts a discounted total into a per-unit price in minor
// currency units. unitAmount * quantity reconstructs the total to within one
// minor unit.
func promoUnitAmount(discounted decimal.Decimal, quantity int64) int64 {
	return discounted.
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(quantity)).
		Round(0).
		IntPart()
}

func amountString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
