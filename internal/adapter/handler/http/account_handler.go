package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/goldenclub/lottery-service/internal/usecase"
	"go.uber.org/zap"
)

type AccountHandler struct {
	accounts *usecase.AccountService
	logger   *zap.Logger
}

func NewAccountHandler(accounts *usecase.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// DeleteUser runs the irreversible deletion cascade for one user id
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	report, err := h.accounts.DeleteUserAndData(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("Account deletion failed",
			zap.String("user_id", c.Param("id")),
			zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"report":  report,
	})
}
