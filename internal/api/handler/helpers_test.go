package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/api/middleware"
	"github.com/bloodchain/portal/internal/api/view"
	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/service"
	"github.com/bloodchain/portal/internal/infrastructure/fixtures"
	"github.com/bloodchain/portal/internal/infrastructure/memory"
)

type loginCall struct {
	role domain.Role
	user string
}

type stubSessions struct {
	current  domain.Session
	logins   []loginCall
	cleared  []string
	switched []domain.Role
}

func (s *stubSessions) Current(context.Context, string) (domain.Session, error) {
	return s.current, nil
}

func (s *stubSessions) Login(_ context.Context, _ string, role domain.Role, user string) (domain.Session, error) {
	s.logins = append(s.logins, loginCall{role: role, user: user})
	s.current = domain.Session{Role: role, LoggedIn: true, User: user}
	return s.current, nil
}

func (s *stubSessions) Logout(_ context.Context, sid string) error {
	s.cleared = append(s.cleared, sid)
	s.current = domain.Session{Role: s.current.Role}
	return nil
}

func (s *stubSessions) SwitchRole(_ context.Context, _ string, role domain.Role) (domain.Session, error) {
	if !s.current.LoggedIn {
		return domain.Session{}, domain.ErrNotLoggedIn
	}
	s.switched = append(s.switched, role)
	s.current.Role = role
	return s.current, nil
}

// fixture bundles a portal handler stack over real services and in-memory stores.
type fixture struct {
	e          *echo.Echo
	sessions   *stubSessions
	workspaces *memory.WorkspaceStore
	auth       *AuthHandler
	portal     *PortalHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e := echo.New()
	e.Renderer = renderer
	e.Validator = NewValidator()

	log := zerolog.Nop()
	workspaces := memory.NewWorkspaceStore(fixtures.NewEmbedded())
	gate := service.NewGate(domain.DefaultRouteTable())
	layout := NewLayout(gate, service.NewFlashService(workspaces), log)
	sessions := &stubSessions{current: domain.Session{Role: domain.RoleDonor}}
	auth := NewAuthHandler(sessions, workspaces, layout, log)
	pages := NewPages(
		service.NewDonorService(workspaces, log),
		service.NewRequestService(workspaces, log),
		service.NewInventoryService(workspaces, log),
		service.NewTrackingService(workspaces, log),
		service.NewUserService(workspaces, log),
	)
	return &fixture{
		e:          e,
		sessions:   sessions,
		workspaces: workspaces,
		auth:       auth,
		portal:     NewPortalHandler(gate, auth, pages, layout, log),
	}
}

func (f *fixture) loginAs(role domain.Role) {
	f.sessions.current = domain.Session{Role: role, LoggedIn: true, User: "x@y.com"}
}

// do runs h with the session context the middleware would have set.
func (f *fixture) do(t *testing.T, h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	c.Set(middleware.ContextKeySID, "sid-1")
	c.Set(middleware.ContextKeySession, f.sessions.current)
	if err := h(c); err != nil {
		f.e.DefaultHTTPErrorHandler(err, c)
	}
	return rec
}

func (f *fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	return f.do(t, f.portal.Dispatch, httptest.NewRequest(http.MethodGet, target, nil))
}

func (f *fixture) post(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return f.do(t, f.portal.Dispatch, formRequest(target, form))
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, code int, location string) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("expected %d, got %d (%s)", code, rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func expectBody(t *testing.T, rec *httptest.ResponseRecorder, want ...string) {
	t.Helper()
	body := rec.Body.String()
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Fatalf("expected body to contain %q, got:\n%s", w, body)
		}
	}
}
