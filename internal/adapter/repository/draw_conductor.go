package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
)

// RPCDrawConductor invokes the draw-conduction procedure exposed as a
// PostgREST RPC endpoint. The draw algorithm itself lives in the database
// function; this client only ships validated parameters.
type RPCDrawConductor struct {
	client         *http.Client
	baseURL        string
	apiKey         string
	serviceRoleKey string
	logger         *zap.Logger
}

// NewRPCDrawConductor creates a new draw conductor client
func NewRPCDrawConductor(baseURL, apiKey, serviceRoleKey string, logger *zap.Logger) *RPCDrawConductor {
	return &RPCDrawConductor{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:        baseURL,
		apiKey:         apiKey,
		serviceRoleKey: serviceRoleKey,
		logger:         logger,
	}
}

var _ repository.DrawConductor = (*RPCDrawConductor)(nil)

// ConductDraw runs the draw and returns the procedure's result unmodified
func (c *RPCDrawConductor) ConductDraw(ctx context.Context, params repository.DrawParams) (json.RawMessage, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draw params: %w", err)
	}

	url := fmt.Sprintf("%s/rest/v1/rpc/conduct_draw", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.serviceRoleKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("draw procedure unreachable: %w", err)
	}
	defer resp.Body.Close()

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read draw result: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Draw procedure rejected",
			zap.String("draw_date", params.DrawDate),
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response_body", result))
		return nil, fmt.Errorf("draw procedure returned status %d: %s", resp.StatusCode, string(result))
	}

	c.logger.Info("Draw conducted",
		zap.String("draw_date", params.DrawDate),
		zap.Int("jackpot", params.JackpotAmount))
	return result, nil
}
