package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/goldenclub/lottery-service/internal/domain/errors"
	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
)

const defaultJackpot = "100"

// DrawService is a configuration-to-invocation adapter: it reads the persisted
// draw settings and hands them to the external draw-conduction procedure. It
// performs no randomness itself.
type DrawService struct {
	settings  repository.SettingsRepository
	conductor repository.DrawConductor
	logger    *zap.Logger
	now       func() time.Time
}

// NewDrawService creates a new draw service
func NewDrawService(settings repository.SettingsRepository, conductor repository.DrawConductor, logger *zap.Logger) *DrawService {
	return &DrawService{
		settings:  settings,
		conductor: conductor,
		logger:    logger,
		now:       time.Now,
	}
}

// TriggerLiveDraw reads current_jackpot and next_draw_date in one batched
// lookup, applies defaults for absent keys and invokes the draw-conduction
// procedure with isTestDraw always false. The result is returned unmodified.
func (s *DrawService) TriggerLiveDraw(ctx context.Context) (json.RawMessage, error) {
	values, err := s.settings.GetValues(ctx, []string{SettingCurrentJackpot, SettingNextDrawDate})
	if err != nil {
		return nil, domainErrors.NewConfigurationError("draw settings are unreadable", err)
	}

	jackpotStr, ok := values[SettingCurrentJackpot]
	if !ok {
		jackpotStr = defaultJackpot
	}
	drawDate, ok := values[SettingNextDrawDate]
	if !ok {
		drawDate = s.now().Format(drawDateLayout)
	}

	jackpot, err := strconv.Atoi(strings.TrimSpace(jackpotStr))
	if err != nil {
		return nil, domainErrors.NewConfigurationError("current_jackpot is not an integer", err)
	}

	s.logger.Info("Triggering live draw",
		zap.String("draw_date", drawDate),
		zap.Int("jackpot", jackpot))

	result, err := s.conductor.ConductDraw(ctx, repository.DrawParams{
		DrawDate:      drawDate,
		JackpotAmount: jackpot,
		IsTestDraw:    false,
	})
	if err != nil {
		return nil, domainErrors.NewUpstreamError("draw conduction failed", err)
	}

	return result, nil
}
