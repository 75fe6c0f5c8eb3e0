package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
)

// SupabaseIdentityRepository implements the identity provider contract against
// the Supabase auth API. Token resolution uses the caller's own token; admin
// reads and the terminal delete use the service role key.
type SupabaseIdentityRepository struct {
	client         *http.Client
	baseURL        string
	apiKey         string
	serviceRoleKey string
	logger         *zap.Logger
}

// NewSupabaseIdentityRepository creates a new Supabase identity repository
func NewSupabaseIdentityRepository(baseURL, apiKey, serviceRoleKey string, logger *zap.Logger) *SupabaseIdentityRepository {
	return &SupabaseIdentityRepository{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:        baseURL,
		apiKey:         apiKey,
		serviceRoleKey: serviceRoleKey,
		logger:         logger,
	}
}

var _ repository.IdentityRepository = (*SupabaseIdentityRepository)(nil)

// GetUserByToken resolves an access token to the user it belongs to
func (r *SupabaseIdentityRepository) GetUserByToken(ctx context.Context, token string) (*repository.Identity, error) {
	return r.fetchUser(ctx, fmt.Sprintf("%s/auth/v1/user", r.baseURL), token)
}

// GetUserByID fetches a user record by id using the service role key
func (r *SupabaseIdentityRepository) GetUserByID(ctx context.Context, userID string) (*repository.Identity, error) {
	return r.fetchUser(ctx, fmt.Sprintf("%s/auth/v1/admin/users/%s", r.baseURL, userID), r.serviceRoleKey)
}

// DeleteUser removes the identity record. Irreversible.
func (r *SupabaseIdentityRepository) DeleteUser(ctx context.Context, userID string) error {
	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", r.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	r.setHeaders(req, r.serviceRoleKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		r.logger.Error("Identity deletion rejected",
			zap.String("user_id", userID),
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response_body", body))
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	r.logger.Info("Identity deleted", zap.String("user_id", userID))
	return nil
}

func (r *SupabaseIdentityRepository) fetchUser(ctx context.Context, url, bearer string) (*repository.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	r.setHeaders(req, bearer)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.logger.Warn("Identity lookup rejected",
			zap.String("url", url),
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response_body", body))
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var identity repository.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	return &identity, nil
}

func (r *SupabaseIdentityRepository) setHeaders(req *http.Request, bearer string) {
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", bearer))
	req.Header.Set("Content-Type", "application/json")
}
