package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	domainErrors "github.com/goldenclub/lottery-service/internal/domain/errors"
	"github.com/goldenclub/lottery-service/internal/middleware/auth"
	"github.com/goldenclub/lottery-service/internal/usecase"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	checkout  *usecase.CheckoutService
	logger    *zap.Logger
	clientURL string
}

func NewCheckoutHandler(checkout *usecase.CheckoutService, logger *zap.Logger, clientURL string) *CheckoutHandler {
	return &CheckoutHandler{
		checkout:  checkout,
		logger:    logger,
		clientURL: clientURL,
	}
}

// CreateSubscription opens a subscription-mode checkout session for the
// caller and returns the processor's hosted redirect URL.
func (h *CheckoutHandler) CreateSubscription(c echo.Context) error {
	var req usecase.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, domainErrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, domainErrors.NewValidationError(err.Error()))
	}

	// Redirect URLs are anchored at the caller's origin; the configured
	// client URL covers non-browser callers.
	req.Origin = c.Request().Header.Get("Origin")
	if req.Origin == "" {
		req.Origin = h.clientURL
	}

	result, err := h.checkout.CreateSubscriptionCheckout(c.Request().Context(), auth.BearerToken(c), &req)
	if err != nil {
		h.logger.Warn("Checkout failed", zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}
