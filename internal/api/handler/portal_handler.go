package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/api/metrics"
	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

type landingStat struct {
	Label string
	Value string
}

type landingData struct {
	Tagline string
	Stats   []landingStat
}

var landing = landingData{
	Tagline: "A blockchain-based blood donation tracking system ensuring secure, transparent, and tamper-proof management of blood supplies.",
	Stats: []landingStat{
		{Label: "Secure Blockchain Tracking", Value: "100%"},
		{Label: "Real-time Information", Value: "24/7"},
		{Label: "Data Tampering", Value: "0%"},
	},
}

type placeholderData struct {
	Title       string
	Description string
}

// PortalHandler serves every HTML path by asking the navigation gate what the
// path means for the current session.
type PortalHandler struct {
	nav    ports.Navigator
	auth   *AuthHandler
	pages  map[domain.PageID]Page
	layout *Layout
	log    zerolog.Logger
}

func NewPortalHandler(nav ports.Navigator, auth *AuthHandler, pages map[domain.PageID]Page, layout *Layout, log zerolog.Logger) *PortalHandler {
	return &PortalHandler{nav: nav, auth: auth, pages: pages, layout: layout, log: log}
}

// Dispatch handles GET and POST for any portal path.
func (h *PortalHandler) Dispatch(c echo.Context) error {
	sid, sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	path := c.Request().URL.Path
	post := c.Request().Method == http.MethodPost

	d := h.nav.Decide(sess, path)
	switch d.Outcome {
	case ports.Redirect:
		return h.redirect(c, path, d)
	case ports.ShowLanding:
		if post {
			return echo.NewHTTPError(http.StatusMethodNotAllowed)
		}
		return h.layout.Render(c, http.StatusOK, "landing", "BloodChain", landing, "")
	case ports.ShowLogin:
		if post {
			return h.auth.Login(c)
		}
		return h.auth.ShowLogin(c)
	case ports.ShowRegister:
		if post {
			return h.auth.Register(c)
		}
		return h.auth.ShowRegister(c)
	}

	req := pageRequest{SID: sid, Session: sess, Entry: d.Entry, Path: path}
	title := d.Entry.Title(d.Role)
	if d.Entry.Placeholder() {
		if post {
			return echo.NewHTTPError(http.StatusMethodNotAllowed)
		}
		data := placeholderData{Title: title, Description: d.Entry.Description(d.Role)}
		return h.layout.Render(c, http.StatusOK, "placeholder", title, data, "")
	}

	page, ok := h.pages[d.Entry.Page]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "page not implemented")
	}
	if post {
		return h.submit(c, page, req)
	}
	res, err := page.Show(c, req)
	if err != nil {
		return err
	}
	return h.layout.Render(c, http.StatusOK, string(d.Entry.Page), title, res.Data, res.Error)
}

// submit runs a page form and redirects back to the page (POST-redirect-GET).
// Input errors become an error flash; anything else propagates.
func (h *PortalHandler) submit(c echo.Context, page Page, req pageRequest) error {
	ctx := c.Request().Context()
	res, err := page.Submit(c, req)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return err
		}
		msg, ok := userMessage(err)
		if !ok {
			return err
		}
		metrics.FormRejectionsTotal.WithLabelValues(string(req.Entry.Page)).Inc()
		if err := h.layout.flashes.AddFlash(ctx, req.SID, domain.FlashError, msg); err != nil {
			return err
		}
	} else if res.Flash != "" {
		if err := h.layout.flashes.AddFlash(ctx, req.SID, domain.FlashSuccess, res.Flash); err != nil {
			return err
		}
	}

	target := req.Path
	if len(res.Query) > 0 {
		target += "?" + res.Query.Encode()
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (h *PortalHandler) redirect(c echo.Context, from string, d ports.Decision) error {
	metrics.RedirectsTotal.WithLabelValues(d.Reason).Inc()
	h.log.Debug().
		Str("from", from).
		Str("to", d.Location).
		Str("reason", d.Reason).
		Msg("navigation redirect")

	status := http.StatusFound
	if c.Request().Method != http.MethodGet {
		status = http.StatusSeeOther
	}
	return c.Redirect(status, d.Location)
}
