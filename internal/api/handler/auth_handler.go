package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/api/metrics"
	"github.com/bloodchain/portal/internal/api/middleware"
	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// AuthHandler serves the login and registration forms plus the session actions
// in the navbar. None of it checks credentials: a login records a claimed role.
type AuthHandler struct {
	sessions   ports.SessionService
	workspaces ports.WorkspaceStore
	layout     *Layout
	log        zerolog.Logger
}

func NewAuthHandler(sessions ports.SessionService, workspaces ports.WorkspaceStore, layout *Layout, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, workspaces: workspaces, layout: layout, log: log}
}

func (h *AuthHandler) ShowLogin(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	return h.layout.Render(c, http.StatusOK, "login", "Sign In", loginForm{Role: string(sess.Role)}, "")
}

func (h *AuthHandler) ShowRegister(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	return h.layout.Render(c, http.StatusOK, "register", "Register", registerForm{Role: string(sess.Role)}, "")
}

// Login records (role, email) in the session and sends the browser to the
// role's dashboard. The password is required but never checked.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	err := c.Validate(&form)
	form.Password = ""
	if err != nil {
		return h.reject(c, "login", "Sign In", form, err)
	}
	return h.login(c, "login", form.Role, form.Email)
}

// Register checks the registration draft and, when it holds, logs in exactly
// like Login. A mismatched password confirmation never reaches the session.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	err := c.Validate(&form)
	form.Password, form.ConfirmPassword = "", ""
	if err != nil {
		return h.reject(c, "register", "Register", form, err)
	}
	return h.login(c, "register", form.Role, form.Email)
}

func (h *AuthHandler) login(c echo.Context, formName, rawRole, email string) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	sess, err := h.sessions.Login(c.Request().Context(), sid, role, email)
	if err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues(string(sess.Role), formName).Inc()
	return c.Redirect(http.StatusSeeOther, sess.Role.DashboardPath())
}

// reject re-renders a form with the draft intact and the validation message inline.
func (h *AuthHandler) reject(c echo.Context, name, title string, form any, err error) error {
	msg, ok := userMessage(err)
	if !ok {
		return err
	}
	metrics.FormRejectionsTotal.WithLabelValues(name).Inc()
	h.log.Debug().Err(err).Str("form", name).Msg("form rejected")
	return h.layout.Render(c, http.StatusUnprocessableEntity, name, title, form, msg)
}

// Logout clears the session fields, discards the session's workspace and
// returns to the landing page.
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if err := h.sessions.Logout(ctx, sid); err != nil {
		return err
	}
	if err := h.workspaces.Drop(ctx, sid); err != nil {
		h.log.Warn().Err(err).Msg("could not drop workspace")
	}
	metrics.LogoutsTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}

// SwitchRole changes the active role from the navbar selector.
func (h *AuthHandler) SwitchRole(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	role, err := domain.ParseRole(c.FormValue("role"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	sess, err := h.sessions.SwitchRole(c.Request().Context(), sid, role)
	if errors.Is(err, domain.ErrNotLoggedIn) {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err != nil {
		return err
	}
	metrics.RoleSwitchesTotal.WithLabelValues(string(sess.Role)).Inc()
	return c.Redirect(http.StatusSeeOther, sess.Role.DashboardPath())
}
