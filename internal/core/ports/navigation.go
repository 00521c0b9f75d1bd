package ports

import "github.com/bloodchain/portal/internal/core/domain"

// Outcome is what the navigation gate wants done with a request path.
type Outcome int

const (
	ShowLanding Outcome = iota
	ShowLogin
	ShowRegister
	ShowPage
	Redirect
)

// Redirect reasons, used as log fields and metric labels.
const (
	ReasonAuthenticated   = "authenticated"
	ReasonRoleMismatch    = "role_mismatch"
	ReasonUnknownSubpath  = "unknown_subpath"
	ReasonUnauthenticated = "unauthenticated"
	ReasonUnknownPath     = "unknown_path"
)

// Decision is the gate's verdict for one path. Entry is set for ShowPage,
// Location and Reason for Redirect.
type Decision struct {
	Outcome  Outcome
	Role     domain.Role
	Entry    domain.RouteEntry
	Location string
	Reason   string
}

// Navigator decides where a request for a path lands.
type Navigator interface {
	Decide(s domain.Session, path string) Decision
	Sidebar(r domain.Role) []domain.RouteEntry
}
