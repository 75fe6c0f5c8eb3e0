package repository

import (
	"context"
	"time"

	"github.com/goldenclub/lottery-service/internal/domain/model"
)

// LotteryDataRepository covers the four tables that reference a user identity
// (lottery_entries, lottery_subscriptions, lottery_results, user_roles) plus
// the aggregate reads the roster needs.
type LotteryDataRepository interface {
	// Per-table deletes for the account deletion cascade. Each delete is
	// independent; callers decide how to react to individual failures.
	DeleteEntries(ctx context.Context, userID string) error
	DeleteSubscriptions(ctx context.Context, userID string) error
	DeleteResults(ctx context.Context, userID string) error
	DeleteRoles(ctx context.Context, userID string) error

	// Roster reads
	ActiveEntryUserIDs(ctx context.Context) ([]string, error)
	ActiveSubscriberUserIDs(ctx context.Context) ([]string, error)
	CountActiveEntries(ctx context.Context, userID string) (int64, error)
	// ActiveSubscriptionSince returns the start date of the user's active
	// subscription, or nil when none exists.
	ActiveSubscriptionSince(ctx context.Context, userID string) (*time.Time, error)

	// Webhook reconciliation writes
	CreateEntry(ctx context.Context, entry *model.LotteryEntry) error
	CreateSubscription(ctx context.Context, sub *model.LotterySubscription) error

	// HasRole reports whether the user holds the given role
	HasRole(ctx context.Context, userID, role string) (bool, error)
}
