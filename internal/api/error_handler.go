package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/api/handler"
	"github.com/bloodchain/portal/internal/api/middleware"
	"github.com/bloodchain/portal/internal/api/view"
	"github.com/bloodchain/portal/internal/core/domain"
)

// errorResponse is the JSON error envelope for /api routes.
type errorResponse struct {
	Error string `json:"error"`
}

type errorPage struct {
	Code    int
	Message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain errors
// to status codes, logs unexpected ones without leaking them, and answers with
// {"error": "..."} under /api or the HTML error page elsewhere.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		if isAPI(c) {
			_ = c.JSON(code, errorResponse{Error: msg})
			return
		}

		page := view.Page{
			Title:   http.StatusText(code),
			Roles:   domain.Roles,
			Path:    c.Request().URL.Path,
			Data:    errorPage{Code: code, Message: msg},
			Session: middleware.CurrentSession(c),
		}
		page.CSRF, _ = c.Get(handler.CSRFContextKey).(string)
		if rerr := c.Render(code, "error", page); rerr != nil {
			log.Error().Err(rerr).Msg("render error page")
			_ = c.String(code, msg)
		}
	}
}

func isAPI(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrDonationNotFound):
		return http.StatusNotFound, "donation not found"
	case errors.Is(err, domain.ErrUnitNotFound):
		return http.StatusNotFound, "blood unit not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, "reward not found"
	case errors.Is(err, domain.ErrNotLoggedIn):
		return http.StatusUnauthorized, "not logged in"
	case errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrEmptyDonationID),
		errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidUnits),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrNoSlotSelected),
		errors.Is(err, domain.ErrReasonRequired),
		errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusUnprocessableEntity, err.Error()
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
