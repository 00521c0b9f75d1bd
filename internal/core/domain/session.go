package domain

// Persisted session field keys. Values are plain strings.
const (
	FieldUserRole    = "userRole"
	FieldIsLoggedIn  = "isLoggedIn"
	FieldCurrentUser = "currentUser"
)

// Session is the portal's only global state: who claims to be logged in, and as which role.
// It records a claimed role; nothing is authenticated.
type Session struct {
	Role     Role
	LoggedIn bool
	User     string
}

// AnonymousSession is the state before login and after logout.
func AnonymousSession(defaultRole Role) Session {
	return Session{Role: defaultRole}
}

// SessionFromFields rebuilds a session from its persisted fields. Missing or
// unparseable values fall back to defaultRole and logged-out.
func SessionFromFields(fields map[string]string, defaultRole Role) Session {
	s := AnonymousSession(defaultRole)
	if r, err := ParseRole(fields[FieldUserRole]); err == nil {
		s.Role = r
	}
	if fields[FieldIsLoggedIn] == "true" {
		s.LoggedIn = true
		s.User = fields[FieldCurrentUser]
	}
	return s
}

// Fields is the persisted form of s.
func (s Session) Fields() map[string]string {
	if !s.LoggedIn {
		return map[string]string{FieldUserRole: string(s.Role)}
	}
	return map[string]string{
		FieldUserRole:    string(s.Role),
		FieldIsLoggedIn:  "true",
		FieldCurrentUser: s.User,
	}
}
