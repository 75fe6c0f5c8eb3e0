package errors

import (
	"errors"
	"fmt"
)

// Error type codes returned to callers alongside the HTTP status.
const (
	ErrTypeValidation     = "VALIDATION_FAILED"
	ErrTypeAuthentication = "AUTHENTICATION_FAILED"
	ErrTypeConfiguration  = "CONFIGURATION_UNREADABLE"
	ErrTypeUpstream       = "UPSTREAM_FAILED"
)

// ErrSettingNotFound indicates that a settings key has no row in lottery_settings
var ErrSettingNotFound = errors.New("setting not found")

// LotteryError carries a stable type code, a human-readable message and the
// upstream cause, if any.
type LotteryError struct {
	Type    string
	Message string
	Cause   error
}

func (e *LotteryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s - %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *LotteryError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates an error for missing or malformed caller input
func NewValidationError(message string) *LotteryError {
	return &LotteryError{
		Type:    ErrTypeValidation,
		Message: message,
	}
}

// NewAuthenticationError creates an error for callers whose identity cannot be established
func NewAuthenticationError(message string, cause error) *LotteryError {
	return &LotteryError{
		Type:    ErrTypeAuthentication,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationError creates an error for unreadable settings where no fallback exists
func NewConfigurationError(message string, cause error) *LotteryError {
	return &LotteryError{
		Type:    ErrTypeConfiguration,
		Message: message,
		Cause:   cause,
	}
}

// NewUpstreamError creates an error for a remote dependency failure, preserving
// the dependency's own message for diagnosis.
func NewUpstreamError(message string, cause error) *LotteryError {
	return &LotteryError{
		Type:    ErrTypeUpstream,
		Message: message,
		Cause:   cause,
	}
}

// TypeOf returns the type code of err, or ErrTypeUpstream when err is not a
// LotteryError.
func TypeOf(err error) string {
	var lErr *LotteryError
	if errors.As(err, &lErr) {
		return lErr.Type
	}
	return ErrTypeUpstream
}
