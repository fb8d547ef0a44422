package http

import (
	"errors"
	"net/http"

	"withus/internal/core/domain/services"
	"withus/internal/core/ports"
	"withus/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps an application error to an HTTP status and writes the
// uniform error body. Unrecognized errors become an opaque 500 so internal
// detail never leaks to clients.
func respondError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ports.ErrInvalidToken),
		errors.Is(err, ports.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ports.ErrInsufficientStock),
		errors.Is(err, ports.ErrDuplicateReview),
		errors.Is(err, ports.ErrEmailTaken),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
