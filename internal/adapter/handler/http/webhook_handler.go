package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"github.com/goldenclub/lottery-service/internal/domain/model"
	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"github.com/goldenclub/lottery-service/internal/usecase"
	"go.uber.org/zap"
)

// WebhookHandler reconciles completed checkout sessions back into the lottery
// tables. The session metadata written at checkout time is the only link
// between the processor's event and the lottery domain.
type WebhookHandler struct {
	logger        *zap.Logger
	webhookSecret string
	data          repository.LotteryDataRepository
	schedule      *usecase.DrawScheduleService
	notifier      repository.Notifier
}

func NewWebhookHandler(
	logger *zap.Logger,
	webhookSecret string,
	data repository.LotteryDataRepository,
	schedule *usecase.DrawScheduleService,
	notifier repository.Notifier,
) *WebhookHandler {
	return &WebhookHandler{
		logger:        logger,
		webhookSecret: webhookSecret,
		data:          data,
		schedule:      schedule,
		notifier:      notifier,
	}
}

func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("Error reading request body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Error reading request body"})
	}

	sig := c.Request().Header.Get("Stripe-Signature")

	event, err := webhook.ConstructEventWithOptions(
		body,
		sig,
		h.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		h.logger.Error("Webhook signature verification failed",
			zap.Error(err),
			zap.String("signature", sig),
		)
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Webhook signature verification failed: " + err.Error(),
		})
	}

	h.logger.Info("Webhook event received",
		zap.String("type", string(event.Type)),
		zap.String("id", event.ID))

	if event.Type == stripe.EventTypeCheckoutSessionCompleted {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			h.logger.Error("Error parsing checkout session", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Error parsing webhook"})
		}
		h.handleCheckoutCompleted(c.Request().Context(), &session)
	}

	return c.JSON(http.StatusOK, echo.Map{"received": true})
}

// handleCheckoutCompleted persists one entry per played line and the
// subscription record. Failures here are logged, never returned: the
// processor would otherwise retry an event we cannot act on differently.
func (h *WebhookHandler) handleCheckoutCompleted(ctx context.Context, session *stripe.CheckoutSession) {
	if session.Metadata["entry_type"] != usecase.EntryTypeSubscription {
		return
	}

	userID, err := uuid.Parse(session.Metadata["user_id"])
	if err != nil {
		h.logger.Error("Checkout session has no usable user_id",
			zap.String("session_id", session.ID),
			zap.Error(err))
		return
	}

	var lines []usecase.LotteryLine
	if err := json.Unmarshal([]byte(session.Metadata["lottery_lines"]), &lines); err != nil {
		h.logger.Error("Checkout session has unparseable lottery_lines",
			zap.String("session_id", session.ID),
			zap.Error(err))
		return
	}

	drawDate, _ := h.schedule.ResolveNextDrawDate(ctx)
	for _, line := range lines {
		entry := &model.LotteryEntry{
			UserID:          userID,
			Numbers:         line.Numbers,
			DrawDate:        drawDate,
			IsActive:        true,
			CheckoutSession: session.ID,
		}
		if err := h.data.CreateEntry(ctx, entry); err != nil {
			h.logger.Error("Failed to persist entry from webhook",
				zap.String("session_id", session.ID),
				zap.Error(err))
		}
	}

	sub := &model.LotterySubscription{
		UserID:    userID,
		Quantity:  int64(len(lines)),
		PromoCode: session.Metadata["promo_code"],
		Status:    model.SubscriptionStatusActive,
	}
	if session.Customer != nil {
		sub.StripeCustomerID = session.Customer.ID
	}
	if session.Subscription != nil {
		id := session.Subscription.ID
		sub.StripeSubscriptionID = &id
	}
	if err := h.data.CreateSubscription(ctx, sub); err != nil {
		h.logger.Error("Failed to persist subscription from webhook",
			zap.String("session_id", session.ID),
			zap.Error(err))
	}

	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}
	if email != "" {
		h.notifier.Notify(ctx, repository.Notification{
			Type:      "subscription_purchase",
			Recipient: email,
			Payload: map[string]interface{}{
				"lines":      len(lines),
				"draw_date":  drawDate,
				"promo_code": session.Metadata["promo_code"],
			},
		})
	}

	h.logger.Info("Checkout session reconciled",
		zap.String("session_id", session.ID),
		zap.String("user_id", userID.String()),
		zap.Int("lines", len(lines)))
}
