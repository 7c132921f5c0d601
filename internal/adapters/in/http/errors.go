package http

import (
	"context"
	"errors"
	"net/http"

	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Error kinds, stable across releases.
const (
	KindNotFound          = "not_found"
	KindInvalidTransition = "invalid_transition"
	KindIntegrity         = "integrity_violation"
	KindPartialFailure    = "partial_failure"
	KindValidation        = "validation"
	KindTimeout           = "timeout"
	KindInternal          = "internal"
)

// classify maps an error onto a status code and kind. A partial failure is
// checked first because it wraps the cause that aborted the commit.
func classify(err error) (int, string) {
	// A partial failure whose cause is a missing row or a broken constraint
	// reports that cause; retrying would fail the same way.
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, errs.ErrIntegrityViolation):
		return http.StatusConflict, KindIntegrity
	case errors.Is(err, errs.ErrPartialFailure):
		return http.StatusServiceUnavailable, KindPartialFailure
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, KindTimeout
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, KindInvalidTransition
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, KindValidation
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

// writeError hides the text of unclassified errors; they are logged instead.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code, kind := classify(err)

	message := err.Error()
	switch kind {
	case KindInternal:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = "internal error"
	case KindTimeout:
		message = "request timed out"
	}

	return ctx.JSON(code, Error{Code: code, Kind: kind, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	})
}
