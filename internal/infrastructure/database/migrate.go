package database

import (
	"github.com/goldenclub/lottery-service/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs database migrations. Settings rows themselves are seeded by
// administrative action, not here.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.Setting{},
		&model.LotteryEntry{},
		&model.LotterySubscription{},
		&model.LotteryResult{},
		&model.UserRole{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}
