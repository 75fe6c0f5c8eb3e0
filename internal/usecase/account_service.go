package usecase

import (
	"context"

	domainErrors "github.com/goldenclub/lottery-service/internal/domain/errors"
	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
)

// CascadeStep records the outcome of one table delete in the cascade
type CascadeStep struct {
	Table   string `json:"table"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// CascadeReport is the per-step outcome of a full account deletion
type CascadeReport struct {
	UserID          string        `json:"user_id"`
	Steps           []CascadeStep `json:"steps"`
	IdentityDeleted bool          `json:"identity_deleted"`
}

// AccountService irreversibly removes a user and every row that references
// the identity across the independent lottery tables.
type AccountService struct {
	data     repository.LotteryDataRepository
	identity repository.IdentityRepository
	logger   *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(data repository.LotteryDataRepository, identity repository.IdentityRepository, logger *zap.Logger) *AccountService {
	return &AccountService{
		data:     data,
		identity: identity,
		logger:   logger,
	}
}

// DeleteUserAndData runs the best-effort cascade in strict order: entries,
// subscriptions, results, roles, then the identity itself. A table delete
// failure is logged and recorded but never aborts the cascade; orphaned rows
// are less harmful than an undeletable identity. Only the final identity
// deletion is fatal, since already-deleted dependents with a surviving
// identity is the one inconsistent state this must not mask.
func (s *AccountService) DeleteUserAndData(ctx context.Context, userID string) (*CascadeReport, error) {
	if userID == "" {
		return nil, domainErrors.NewValidationError("userId is required")
	}

	steps := []struct {
		table  string
		delete func(context.Context, string) error
	}{
		{"lottery_entries", s.data.DeleteEntries},
		{"lottery_subscriptions", s.data.DeleteSubscriptions},
		{"lottery_results", s.data.DeleteResults},
		{"user_roles", s.data.DeleteRoles},
	}

	report := &CascadeReport{UserID: userID}
	for _, step := range steps {
		outcome := CascadeStep{Table: step.table, Deleted: true}
		if err := step.delete(ctx, userID); err != nil {
			s.logger.Error("Cascade step failed, continuing",
				zap.String("table", step.table),
				zap.String("user_id", userID),
				zap.Error(err))
			outcome.Deleted = false
			outcome.Error = err.Error()
		}
		report.Steps = append(report.Steps, outcome)
	}

	if err := s.identity.DeleteUser(ctx, userID); err != nil {
		s.logger.Error("Identity deletion failed",
			zap.String("user_id", userID),
			zap.Error(err))
		return report, domainErrors.NewUpstreamError("failed to delete user identity", err)
	}
	report.IdentityDeleted = true

	s.logger.Info("User and dependent data deleted", zap.String("user_id", userID))
	return report, nil
}
