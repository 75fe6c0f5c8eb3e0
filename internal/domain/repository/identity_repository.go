package repository

import (
	"context"
	"time"
)

// Identity is the subset of the identity provider's user record the
// orchestrator cares about.
type Identity struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
}

// IdentityRepository talks to the external identity provider. Identities are
// referenced, never owned, by the lottery tables.
type IdentityRepository interface {
	// GetUserByToken resolves an access token to the user it belongs to
	GetUserByToken(ctx context.Context, token string) (*Identity, error)
	// GetUserByID fetches a user record by id using admin credentials
	GetUserByID(ctx context.Context, userID string) (*Identity, error)
	// DeleteUser removes the identity record itself. Irreversible.
	DeleteUser(ctx context.Context, userID string) error
}
