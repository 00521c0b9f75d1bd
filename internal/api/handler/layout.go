package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/api/middleware"
	"github.com/bloodchain/portal/internal/api/view"
	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// CSRFContextKey is where the CSRF middleware leaves the form token.
const CSRFContextKey = "csrf"

// Layout assembles the chrome shared by every HTML page.
type Layout struct {
	nav     ports.Navigator
	flashes ports.FlashQueue
	log     zerolog.Logger
}

func NewLayout(nav ports.Navigator, flashes ports.FlashQueue, log zerolog.Logger) *Layout {
	return &Layout{nav: nav, flashes: flashes, log: log}
}

// Page builds the template data for the current request. Pending flashes are
// consumed only for logged-in sessions, which are the only ones with a workspace.
func (l *Layout) Page(c echo.Context, title string, data any) view.Page {
	sess := middleware.CurrentSession(c)
	p := view.Page{
		Title:   title,
		Session: sess,
		Roles:   domain.Roles,
		Path:    c.Request().URL.Path,
		Data:    data,
	}
	p.CSRF, _ = c.Get(CSRFContextKey).(string)

	if sess.LoggedIn && sess.Role.Valid() {
		p.Sidebar = l.nav.Sidebar(sess.Role)
		p.Base = sess.Role.BasePath()
		flashes, err := l.flashes.TakeFlashes(c.Request().Context(), middleware.SessionID(c))
		if err != nil {
			l.log.Warn().Err(err).Msg("could not read flashes")
		}
		p.Flashes = flashes
	}
	return p
}

// Render writes a full page. inlineErr is shown above the page's form.
func (l *Layout) Render(c echo.Context, status int, name, title string, data any, inlineErr string) error {
	p := l.Page(c, title, data)
	p.Error = inlineErr
	return c.Render(status, name, p)
}
