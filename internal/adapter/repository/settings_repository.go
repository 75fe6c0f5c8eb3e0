package repository

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/goldenclub/lottery-service/internal/domain/errors"
	"github.com/goldenclub/lottery-service/internal/domain/model"
	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSettingsRepository creates a settings repository backed by the
// lottery_settings table.
func NewSettingsRepository(db *gorm.DB, logger *zap.Logger) repository.SettingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetValue returns the value stored under key
func (r *settingsRepository) GetValue(ctx context.Context, key string) (string, error) {
	var setting model.Setting

	err := r.db.WithContext(ctx).
		Where("setting_key = ?", key).
		First(&setting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainErrors.ErrSettingNotFound
		}
		r.logger.Error("Failed to read setting",
			zap.String("setting_key", key),
			zap.Error(err))
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}

	return setting.Value, nil
}

// GetValues batches a lookup of several keys; absent keys are simply missing
// from the returned map.
func (r *settingsRepository) GetValues(ctx context.Context, keys []string) (map[string]string, error) {
	var settings []model.Setting

	err := r.db.WithContext(ctx).
		Where("setting_key IN ?", keys).
		Find(&settings).Error

	if err != nil {
		r.logger.Error("Failed to read settings",
			zap.Strings("setting_keys", keys),
			zap.Error(err))
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	return values, nil
}
