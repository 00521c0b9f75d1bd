package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodchain/portal/internal/api/middleware"
	"github.com/bloodchain/portal/internal/core/domain"
)

// pageRequest carries what a page needs to know about the request it serves.
type pageRequest struct {
	SID     string
	Session domain.Session
	Entry   domain.RouteEntry
	Path    string
}

// ctxSession extracts the sid and session injected by the session middleware.
// An empty sid means the middleware chain is misconfigured.
func ctxSession(c echo.Context) (string, domain.Session, error) {
	sid := middleware.SessionID(c)
	if sid == "" {
		return "", domain.Session{}, echo.NewHTTPError(http.StatusInternalServerError, "session not initialised")
	}
	return sid, middleware.CurrentSession(c), nil
}
