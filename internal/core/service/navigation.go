package service

import (
	"strings"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// RouteResolver is the slice of the route table the gate needs.
type RouteResolver interface {
	Entries(r domain.Role) []domain.RouteEntry
	Resolve(r domain.Role, subPath string) (entry domain.RouteEntry, home domain.RouteEntry, ok bool)
}

// Gate maps (session, path) to a render or redirect decision. It holds no
// state and never writes the session.
type Gate struct {
	routes RouteResolver
}

func NewGate(routes RouteResolver) *Gate {
	return &Gate{routes: routes}
}

// Decide applies the navigation rules in priority order:
//  1. "/" shows the landing page.
//  2. "/login" and "/register" show their forms, or send logged-in users to their dashboard.
//  3. Another known role's dashboard sends a logged-in user to their own.
//  4. Paths under the active role's base go through the route table.
//  5. Everything else goes to "/login" when logged out,
//  6. or to the active dashboard when logged in.
//
// A session whose role is not one of the known roles is treated as logged out.
func (g *Gate) Decide(s domain.Session, path string) ports.Decision {
	path = normalizePath(path)
	loggedIn := s.LoggedIn && s.Role.Valid()

	switch path {
	case "/":
		return ports.Decision{Outcome: ports.ShowLanding, Role: s.Role}
	case "/login", "/register":
		if loggedIn {
			return redirect(s.Role, s.Role.DashboardPath(), ports.ReasonAuthenticated)
		}
		if path == "/login" {
			return ports.Decision{Outcome: ports.ShowLogin, Role: s.Role}
		}
		return ports.Decision{Outcome: ports.ShowRegister, Role: s.Role}
	}

	if !loggedIn {
		return redirect(s.Role, "/login", ports.ReasonUnauthenticated)
	}

	if other, ok := dashboardRole(path); ok && other != s.Role {
		return redirect(s.Role, s.Role.DashboardPath(), ports.ReasonRoleMismatch)
	}

	base := s.Role.BasePath()
	if path == base || strings.HasPrefix(path, base+"/") {
		sub := strings.TrimPrefix(path, base)
		entry, home, ok := g.routes.Resolve(s.Role, sub)
		if ok {
			return ports.Decision{Outcome: ports.ShowPage, Role: s.Role, Entry: entry}
		}
		return redirect(s.Role, base+home.Path, ports.ReasonUnknownSubpath)
	}

	return redirect(s.Role, s.Role.DashboardPath(), ports.ReasonUnknownPath)
}

// Sidebar lists the role's navigation entries in order.
func (g *Gate) Sidebar(r domain.Role) []domain.RouteEntry {
	if !r.Valid() {
		return nil
	}
	return g.routes.Entries(r)
}

func redirect(r domain.Role, location, reason string) ports.Decision {
	return ports.Decision{Outcome: ports.Redirect, Role: r, Location: location, Reason: reason}
}

// dashboardRole reports the role of a "/{role}/dashboard" path.
func dashboardRole(path string) (domain.Role, bool) {
	slug, rest, found := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if !found || rest != "dashboard" {
		return "", false
	}
	return domain.RoleFromSlug(slug)
}

// normalizePath trims trailing slashes; "/" and "" both become "/".
func normalizePath(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
