package usecase

import (
	"context"
	"time"

	domainErrors "github.com/goldenclub/lottery-service/internal/domain/errors"
	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
)

// RosterEntry is one user with lottery activity, enriched with identity and
// activity metadata. Derived, recomputed on every read, never persisted.
type RosterEntry struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	CreatedAt             time.Time  `json:"created_at"`
	LastSignInAt          *time.Time `json:"last_sign_in_at,omitempty"`
	EntriesCount          int64      `json:"entries_count"`
	HasActiveSubscription bool       `json:"has_active_subscription"`
	SubscriptionSince     *time.Time `json:"subscription_since,omitempty"`
}

// RosterService merges user ids from the two independent activity tables into
// a deduplicated roster.
type RosterService struct {
	data     repository.LotteryDataRepository
	identity repository.IdentityRepository
	logger   *zap.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(data repository.LotteryDataRepository, identity repository.IdentityRepository, logger *zap.Logger) *RosterService {
	return &RosterService{
		data:     data,
		identity: identity,
		logger:   logger,
	}
}

// ListLotteryUsers unions the distinct active user ids of lottery_entries and
// lottery_subscriptions (set semantics, insertion order) and enriches each id.
// A lookup failure for a single id is logged and that id is skipped; the
// roster is partial rather than failing outright.
func (s *RosterService) ListLotteryUsers(ctx context.Context) ([]RosterEntry, error) {
	entryIDs, err := s.data.ActiveEntryUserIDs(ctx)
	if err != nil {
		return nil, domainErrors.NewUpstreamError("could not list entry users", err)
	}
	subscriberIDs, err := s.data.ActiveSubscriberUserIDs(ctx)
	if err != nil {
		return nil, domainErrors.NewUpstreamError("could not list subscribers", err)
	}

	seen := make(map[string]struct{}, len(entryIDs)+len(subscriberIDs))
	ids := make([]string, 0, len(entryIDs)+len(subscriberIDs))
	for _, id := range append(entryIDs, subscriberIDs...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	roster := make([]RosterEntry, 0, len(ids))
	for _, id := range ids {
		entry, err := s.buildEntry(ctx, id)
		if err != nil {
			s.logger.Warn("Skipping user after lookup failure",
				zap.String("user_id", id),
				zap.Error(err))
			continue
		}
		roster = append(roster, *entry)
	}

	return roster, nil
}

func (s *RosterService) buildEntry(ctx context.Context, userID string) (*RosterEntry, error) {
	user, err := s.identity.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	count, err := s.data.CountActiveEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	since, err := s.data.ActiveSubscriptionSince(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &RosterEntry{
		ID:                    user.ID,
		Email:                 user.Email,
		CreatedAt:             user.CreatedAt,
		LastSignInAt:          user.LastSignInAt,
		EntriesCount:          count,
		HasActiveSubscription: since != nil,
		SubscriptionSince:     since,
	}, nil
}
