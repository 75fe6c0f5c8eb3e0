package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goldenclub/lottery-service/internal/domain/model"
	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type lotteryDataRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewLotteryDataRepository creates a repository over the four tables that
// reference a user identity.
func NewLotteryDataRepository(db *gorm.DB, logger *zap.Logger) repository.LotteryDataRepository {
	return &lotteryDataRepository{
		db:     db,
		logger: logger,
	}
}

// DeleteEntries removes all lottery entries of the user
func (r *lotteryDataRepository) DeleteEntries(ctx context.Context, userID string) error {
	return r.deleteByUser(ctx, userID, &model.LotteryEntry{}, "lottery_entries")
}

// DeleteSubscriptions removes all lottery subscriptions of the user
func (r *lotteryDataRepository) DeleteSubscriptions(ctx context.Context, userID string) error {
	return r.deleteByUser(ctx, userID, &model.LotterySubscription{}, "lottery_subscriptions")
}

// DeleteResults removes all lottery results of the user
func (r *lotteryDataRepository) DeleteResults(ctx context.Context, userID string) error {
	return r.deleteByUser(ctx, userID, &model.LotteryResult{}, "lottery_results")
}

// DeleteRoles removes all role assignments of the user
func (r *lotteryDataRepository) DeleteRoles(ctx context.Context, userID string) error {
	return r.deleteByUser(ctx, userID, &model.UserRole{}, "user_roles")
}

func (r *lotteryDataRepository) deleteByUser(ctx context.Context, userID string, m interface{}, table string) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(m)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s rows: %w", table, result.Error)
	}

	r.logger.Info("Deleted user rows",
		zap.String("table", table),
		zap.String("user_id", userID),
		zap.Int64("rows", result.RowsAffected))
	return nil
}

// ActiveEntryUserIDs returns the distinct user ids with active lottery entries
func (r *lotteryDataRepository) ActiveEntryUserIDs(ctx context.Context) ([]string, error) {
	var ids []string

	err := r.db.WithContext(ctx).
		Model(&model.LotteryEntry{}).
		Where("is_active = ?", true).
		Distinct().
		Pluck("user_id", &ids).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list entry user ids: %w", err)
	}
	return ids, nil
}

// ActiveSubscriberUserIDs returns the distinct user ids with an active
// lottery subscription.
func (r *lotteryDataRepository) ActiveSubscriberUserIDs(ctx context.Context) ([]string, error) {
	var ids []string

	err := r.db.WithContext(ctx).
		Model(&model.LotterySubscription{}).
		Where("status = ?", model.SubscriptionStatusActive).
		Distinct().
		Pluck("user_id", &ids).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list subscriber user ids: %w", err)
	}
	return ids, nil
}

// CountActiveEntries counts the user's active lottery entries
func (r *lotteryDataRepository) CountActiveEntries(ctx context.Context, userID string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.LotteryEntry{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// ActiveSubscriptionSince returns the start date of the user's oldest active
// subscription, or nil when there is none.
func (r *lotteryDataRepository) ActiveSubscriptionSince(ctx context.Context, userID string) (*time.Time, error) {
	var sub model.LotterySubscription

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.SubscriptionStatusActive).
		Order("created_at ASC").
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}

	since := sub.CreatedAt
	return &since, nil
}

// CreateEntry persists one played line
func (r *lotteryDataRepository) CreateEntry(ctx context.Context, entry *model.LotteryEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		r.logger.Error("Failed to create lottery entry",
			zap.String("user_id", entry.UserID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to create lottery entry: %w", err)
	}
	return nil
}

// CreateSubscription persists a lottery subscription record
func (r *lotteryDataRepository) CreateSubscription(ctx context.Context, sub *model.LotterySubscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		r.logger.Error("Failed to create lottery subscription",
			zap.String("user_id", sub.UserID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to create lottery subscription: %w", err)
	}
	return nil
}

// HasRole reports whether the user holds the given role
func (r *lotteryDataRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return count > 0, nil
}
