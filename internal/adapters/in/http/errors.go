package http

import (
	"errors"
	"net/http"

	"ghostkitchen/internal/core/application/usecases/commands"
	"ghostkitchen/internal/core/application/usecases/queries"
	"ghostkitchen/internal/core/domain/model/account"
	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/core/domain/model/otp"
	"ghostkitchen/internal/core/domain/services"
	"ghostkitchen/internal/generated/servers"
	"ghostkitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func errorBody(code int, message string) servers.Error {
	return servers.Error{Code: code, Message: message}
}

// respondError translates application and domain failures into HTTP responses.
// Validation failures surface their message so API clients can correct the
// request; everything unclassified collapses into a plain 500.
func respondError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody(http.StatusNotFound, err.Error()))

	case errors.Is(err, account.ErrInvalidCredentials):
		return ctx.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "Invalid credentials"))

	case errors.Is(err, commands.ErrRestaurantNotOwned),
		errors.Is(err, queries.ErrVerificationTokenMismatch):
		return ctx.JSON(http.StatusForbidden, errorBody(http.StatusForbidden, err.Error()))

	case errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderAlreadyFinal),
		errors.Is(err, order.ErrTooLateToCancel):
		return ctx.JSON(http.StatusConflict, errorBody(http.StatusConflict, err.Error()))

	case errors.Is(err, commands.ErrRestaurantIsNotActive),
		errors.Is(err, services.ErrProductUnavailable):
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody(http.StatusUnprocessableEntity, err.Error()))

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, otp.ErrCodeMismatch),
		errors.Is(err, otp.ErrCodeExpired):
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))

	default:
		return ctx.JSON(http.StatusInternalServerError,
			errorBody(http.StatusInternalServerError, "Internal server error"))
	}
}
