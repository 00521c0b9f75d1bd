package domain

import "strings"

// Role is one of the four portal audiences. The zero value is not a valid role.
type Role string

const (
	RoleDonor     Role = "Donor"
	RoleRecipient Role = "Recipient"
	RoleHospital  Role = "Hospital"
	RoleAdmin     Role = "Admin"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleDonor, RoleRecipient, RoleHospital, RoleAdmin}

// ParseRole accepts a role name in any letter case.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleRecipient, RoleHospital, RoleAdmin:
		return true
	}
	return false
}

// Slug is the lower-cased role used as the first path segment.
func (r Role) Slug() string { return strings.ToLower(string(r)) }

// BasePath is the root of the role's dashboard subtree, e.g. "/donor".
func (r Role) BasePath() string { return "/" + r.Slug() }

// DashboardPath is where login and stale links land, e.g. "/donor/dashboard".
func (r Role) DashboardPath() string { return r.BasePath() + "/dashboard" }

// RoleFromSlug maps a path segment back to its role.
func RoleFromSlug(slug string) (Role, bool) {
	for _, r := range Roles {
		if r.Slug() == slug {
			return r, true
		}
	}
	return "", false
}

// HasBloodType reports whether profiles of this role carry a blood group.
func (r Role) HasBloodType() bool { return r == RoleDonor || r == RoleRecipient }
