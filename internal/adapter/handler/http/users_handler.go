package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/goldenclub/lottery-service/internal/usecase"
	"go.uber.org/zap"
)

type UsersHandler struct {
	roster *usecase.RosterService
	logger *zap.Logger
}

func NewUsersHandler(roster *usecase.RosterService, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{
		roster: roster,
		logger: logger,
	}
}

// ListUsers returns the deduplicated roster of users with lottery activity
func (h *UsersHandler) ListUsers(c echo.Context) error {
	users, err := h.roster.ListLotteryUsers(c.Request().Context())
	if err != nil {
		h.logger.Error("Roster listing failed", zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users": users,
		"count": len(users),
	})
}
