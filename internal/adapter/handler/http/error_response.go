package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	domainErrors "github.com/goldenclub/lottery-service/internal/domain/errors"
)

// writeError maps the domain error taxonomy onto HTTP statuses. The upstream
// cause, when present, is nested under details for diagnosis.
func writeError(c echo.Context, err error) error {
	status := http.StatusBadGateway
	code := domainErrors.ErrTypeUpstream
	message := "upstream dependency failed"
	var details string

	var lErr *domainErrors.LotteryError
	if errors.As(err, &lErr) {
		code = lErr.Type
		message = lErr.Message
		if lErr.Cause != nil {
			details = lErr.Cause.Error()
		}
		switch lErr.Type {
		case domainErrors.ErrTypeValidation:
			status = http.StatusBadRequest
		case domainErrors.ErrTypeAuthentication:
			status = http.StatusUnauthorized
		case domainErrors.ErrTypeConfiguration:
			status = http.StatusInternalServerError
		}
	} else {
		details = err.Error()
	}

	body := echo.Map{
		"error": message,
		"code":  code,
	}
	if details != "" {
		body["details"] = details
	}
	return c.JSON(status, body)
}
