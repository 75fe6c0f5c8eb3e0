package database

import (
	adapter "github.com/goldenclub/lottery-service/internal/adapter/repository"
	"github.com/goldenclub/lottery-service/internal/config"
	domainRepo "github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Settings      domainRepo.SettingsRepository
	LotteryData   domainRepo.LotteryDataRepository
	Identity      domainRepo.IdentityRepository
	DrawConductor domainRepo.DrawConductor
	Notifier      domainRepo.Notifier
}

// NewRepositories creates new repository instances with database connection
// and the Supabase clients for identity, draw conduction and notifications.
func NewRepositories(db *gorm.DB, supabase *config.SupabaseConfig, logger *zap.Logger) *Repositories {
	return &Repositories{
		Settings:      adapter.NewSettingsRepository(db, logger),
		LotteryData:   adapter.NewLotteryDataRepository(db, logger),
		Identity:      adapter.NewSupabaseIdentityRepository(supabase.ProjectURL, supabase.APIKey, supabase.ServiceRoleKey, logger),
		DrawConductor: adapter.NewRPCDrawConductor(supabase.ProjectURL, supabase.APIKey, supabase.ServiceRoleKey, logger),
		Notifier:      adapter.NewEmailNotifier(supabase.ProjectURL, supabase.ServiceRoleKey, logger),
	}
}
