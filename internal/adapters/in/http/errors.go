package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors onto HTTP status codes. The error's own
// message is used for client-side failures; server-side failures return a
// generic message so internals never leak.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, queries.ErrAuthenticationFailed):
		// Uniform body regardless of which check failed
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrUnknownReference):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, errs.ErrDuplicateValue):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidCredentialInput):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

// badRequest is the response for requests that fail before reaching a use case.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
