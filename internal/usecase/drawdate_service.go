package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/goldenclub/lottery-service/internal/domain/errors"
	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
)

// Settings keys read by the scheduling and draw components
const (
	SettingNextDrawDate   = "next_draw_date"
	SettingDrawTime       = "draw_time"
	SettingCurrentJackpot = "current_jackpot"
)

const (
	drawDateLayout = "2006-01-02"
	drawTimeLayout = "15:04"
)

// DrawDateSource reports which branch produced a resolved draw date, so
// callers can tell a configured date from the calendar fallback.
type DrawDateSource string

const (
	DrawDateFromSettings DrawDateSource = "settings"
	DrawDateComputed     DrawDateSource = "computed"
)

// DrawScheduleService resolves the authoritative next/current draw date from
// stored settings, falling back to a calendar rule when they are unreadable.
type DrawScheduleService struct {
	settings repository.SettingsRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewDrawScheduleService creates a new draw schedule service
func NewDrawScheduleService(settings repository.SettingsRepository, logger *zap.Logger) *DrawScheduleService {
	return &DrawScheduleService{
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

// ResolveNextDrawDate combines next_draw_date and draw_time from settings into
// a single timestamp. Store errors, absent keys and malformed values all
// collapse to the computed fallback: the last day of the month following the
// current date, at start of day. Scheduling never hard-fails on unreadable
// configuration.
func (s *DrawScheduleService) ResolveNextDrawDate(ctx context.Context) (time.Time, DrawDateSource) {
	values, err := s.settings.GetValues(ctx, []string{SettingNextDrawDate, SettingDrawTime})
	if err != nil {
		s.logger.Warn("Settings unreadable, using computed next draw date", zap.Error(err))
		return s.fallbackNextDrawDate(), DrawDateComputed
	}

	dateStr, hasDate := values[SettingNextDrawDate]
	timeStr, hasTime := values[SettingDrawTime]
	if !hasDate || !hasTime {
		return s.fallbackNextDrawDate(), DrawDateComputed
	}

	date, err := time.ParseInLocation(drawDateLayout, dateStr, time.UTC)
	if err != nil {
		s.logger.Warn("Malformed next_draw_date setting, using computed next draw date",
			zap.String("value", dateStr),
			zap.Error(err))
		return s.fallbackNextDrawDate(), DrawDateComputed
	}

	drawTime, err := time.ParseInLocation(drawTimeLayout, timeStr, time.UTC)
	if err != nil {
		s.logger.Warn("Malformed draw_time setting, using computed next draw date",
			zap.String("value", timeStr),
			zap.Error(err))
		return s.fallbackNextDrawDate(), DrawDateComputed
	}

	combined := time.Date(date.Year(), date.Month(), date.Day(),
		drawTime.Hour(), drawTime.Minute(), 0, 0, time.UTC)
	return combined, DrawDateFromSettings
}

// ResolveCurrentDrawDate is a pure calendar function: the last day of the
// current month at start of day. No settings lookup.
func (s *DrawScheduleService) ResolveCurrentDrawDate() time.Time {
	now := s.now()
	return lastDayOfMonth(now.Year(), now.Month())
}

// IsCurrentDrawPeriod reports whether d falls in the same month and year as
// the current draw date.
func (s *DrawScheduleService) IsCurrentDrawPeriod(d time.Time) bool {
	current := s.ResolveCurrentDrawDate()
	return d.Month() == current.Month() && d.Year() == current.Year()
}

// IsPastDraw reports whether d is strictly before the present instant
func (s *DrawScheduleService) IsPastDraw(d time.Time) bool {
	return d.Before(s.now())
}

// CurrentJackpot returns the advertised jackpot value, or "" when the setting
// is absent or unreadable. Display-only; the draw trigger reads its own copy.
func (s *DrawScheduleService) CurrentJackpot(ctx context.Context) string {
	value, err := s.settings.GetValue(ctx, SettingCurrentJackpot)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrSettingNotFound) {
			s.logger.Warn("Jackpot setting unreadable", zap.Error(err))
		}
		return ""
	}
	return value
}

func (s *DrawScheduleService) fallbackNextDrawDate() time.Time {
	now := s.now()
	return lastDayOfMonth(now.Year(), now.Month()+1)
}

// lastDayOfMonth relies on time.Date normalizing day zero of the following
// month to the last day of the requested one.
func lastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}
