package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
)

// EmailNotifier posts structured payloads to the external email function.
// Fire-and-forget: delivery runs detached from the caller's request and
// failures are only logged.
type EmailNotifier struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

// NewEmailNotifier creates a new email notifier
func NewEmailNotifier(baseURL, apiKey string, logger *zap.Logger) *EmailNotifier {
	return &EmailNotifier{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
	}
}

var _ repository.Notifier = (*EmailNotifier)(nil)

// Notify sends the notification in the background. The caller's context is
// deliberately not used: the request must not wait for, or fail with, the sink.
func (n *EmailNotifier) Notify(_ context.Context, notification repository.Notification) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		body, err := json.Marshal(notification)
		if err != nil {
			n.logger.Error("Failed to encode notification", zap.Error(err))
			return
		}

		url := fmt.Sprintf("%s/functions/v1/send-lottery-email", n.baseURL)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			n.logger.Error("Failed to create notification request", zap.Error(err))
			return
		}
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", n.apiKey))
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			n.logger.Warn("Notification delivery failed",
				zap.String("type", notification.Type),
				zap.Error(err))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			n.logger.Warn("Notification sink rejected payload",
				zap.String("type", notification.Type),
				zap.Int("status_code", resp.StatusCode))
			return
		}

		n.logger.Debug("Notification delivered",
			zap.String("type", notification.Type),
			zap.String("recipient", notification.Recipient))
	}()
}
