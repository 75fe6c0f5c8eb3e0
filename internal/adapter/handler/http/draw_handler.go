package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/goldenclub/lottery-service/internal/usecase"
	"go.uber.org/zap"
)

type DrawHandler struct {
	draws    *usecase.DrawService
	schedule *usecase.DrawScheduleService
	logger   *zap.Logger
}

func NewDrawHandler(draws *usecase.DrawService, schedule *usecase.DrawScheduleService, logger *zap.Logger) *DrawHandler {
	return &DrawHandler{
		draws:    draws,
		schedule: schedule,
		logger:   logger,
	}
}

// TriggerDraw runs the live draw from persisted configuration and returns the
// conduction result unmodified.
func (h *DrawHandler) TriggerDraw(c echo.Context) error {
	result, err := h.draws.TriggerLiveDraw(c.Request().Context())
	if err != nil {
		h.logger.Error("Draw trigger failed", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSONBlob(http.StatusOK, result)
}

// NextDrawDate reports the scheduled next draw and which branch resolved it
func (h *DrawHandler) NextDrawDate(c echo.Context) error {
	date, source := h.schedule.ResolveNextDrawDate(c.Request().Context())

	body := echo.Map{
		"next_draw_date": date,
		"source":         source,
	}
	if jackpot := h.schedule.CurrentJackpot(c.Request().Context()); jackpot != "" {
		body["current_jackpot"] = jackpot
	}
	return c.JSON(http.StatusOK, body)
}
