package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"campusdelivery/internal/core/application/usecases/commands"
	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var statusByError = []struct {
	status int
	errs   []error
}{
	{http.StatusBadRequest, []error{
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
	}},
	{http.StatusUnauthorized, []error{
		commands.ErrOTPInvalid,
	}},
	{http.StatusForbidden, []error{
		commands.ErrPhoneNotWhitelisted,
		order.ErrOrderNotAssignedToRider,
	}},
	{http.StatusNotFound, []error{
		errs.ErrObjectNotFound,
		commands.ErrOrderNotFound,
		commands.ErrAddressNotFound,
		commands.ErrRiderNotFound,
		commands.ErrCustomerNotFound,
		inventory.ErrProductNotFound,
	}},
	{http.StatusConflict, []error{
		order.ErrOrderAlreadyAssigned,
		order.ErrOrderStatusInvalid,
		order.ErrAlreadyCancelled,
		order.ErrOrderNotCancellable,
		commands.ErrRiderInactive,
		commands.ErrInventoryItemExists,
		inventory.ErrProductInactive,
		inventory.ErrOutOfStock,
		inventory.ErrInsufficientStock,
	}},
}

// statusOf maps a handler error to its response status. Integrity failures
// such as inventory.ErrInventoryRowMissing stay 500.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}
	for _, group := range statusByError {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status
			}
		}
	}
	return http.StatusInternalServerError
}

func messageOf(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprint(httpErr.Message)
	}
	return err.Error()
}

// NewErrorHandler renders every error returned by a handler or middleware as
// an Error body. Server errors are logged with their cause and hidden from
// the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := statusOf(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, Error{Code: status, Message: messageOf(err, status)})
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
