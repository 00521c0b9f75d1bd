package domain

import "fmt"

// PageID names a concrete page implementation. Entries without one render a placeholder.
type PageID string

const (
	PageDonorDashboard PageID = "donor-dashboard"
	PageSchedule       PageID = "schedule"
	PageHistory        PageID = "history"
	PageRewards        PageID = "rewards"
	PageBloodRequest   PageID = "blood-request"
	PageInventory      PageID = "inventory"
	PageTracking       PageID = "tracking"
	PageUsers          PageID = "users"
)

// RouteEntry is one item of a role's navigation.
type RouteEntry struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Page PageID `json:"page,omitempty"`
}

// Placeholder reports whether the entry has no dedicated page.
func (e RouteEntry) Placeholder() bool { return e.Page == "" }

// Title is the heading used for the entry when rendered, "{role} - {name}".
func (e RouteEntry) Title(r Role) string { return fmt.Sprintf("%s - %s", r, e.Name) }

// Description is the fixed placeholder body.
func (e RouteEntry) Description(r Role) string { return fmt.Sprintf("Content for %s.", e.Title(r)) }

// RouteTable maps each role to its ordered sub-routes. Entry 0 is the role's home.
type RouteTable struct {
	routes map[Role][]RouteEntry
}

// DefaultRouteTable is the canonical per-role navigation.
func DefaultRouteTable() *RouteTable {
	return &RouteTable{routes: map[Role][]RouteEntry{
		RoleDonor: {
			{Path: "/dashboard", Name: "Dashboard", Page: PageDonorDashboard},
			{Path: "/profile", Name: "Profile"},
			{Path: "/schedule", Name: "Schedule Donation", Page: PageSchedule},
			{Path: "/history", Name: "Donation History", Page: PageHistory},
			{Path: "/track", Name: "Track Donation", Page: PageTracking},
			{Path: "/rewards", Name: "Rewards", Page: PageRewards},
		},
		RoleRecipient: {
			{Path: "/dashboard", Name: "Dashboard"},
			{Path: "/profile", Name: "Profile"},
			{Path: "/request", Name: "Request Blood", Page: PageBloodRequest},
			{Path: "/search", Name: "Search Blood"},
			{Path: "/status", Name: "Request Status"},
			{Path: "/track", Name: "Track Request", Page: PageTracking},
		},
		RoleHospital: {
			{Path: "/dashboard", Name: "Dashboard"},
			{Path: "/manage", Name: "Manage Donations"},
			{Path: "/inventory", Name: "Blood Inventory", Page: PageInventory},
			{Path: "/requests", Name: "Blood Requests"},
			{Path: "/track", Name: "Track Units", Page: PageTracking},
		},
		RoleAdmin: {
			{Path: "/dashboard", Name: "Dashboard"},
			{Path: "/users", Name: "User Management", Page: PageUsers},
			{Path: "/inventory-admin", Name: "System Inventory", Page: PageInventory},
			{Path: "/requests-admin", Name: "All Requests"},
			{Path: "/rewards-admin", Name: "Rewards Setup"},
			{Path: "/audit", Name: "System Audit"},
			{Path: "/track-admin", Name: "Track All", Page: PageTracking},
		},
	}}
}

// Entries returns a copy of the role's route list, or nil for an unknown role.
func (t *RouteTable) Entries(r Role) []RouteEntry {
	entries, ok := t.routes[r]
	if !ok {
		return nil
	}
	out := make([]RouteEntry, len(entries))
	copy(out, entries)
	return out
}

// Resolve finds the entry for subPath (relative to the role base, e.g. "/schedule").
// When nothing matches, ok is false and home is the role's first entry.
func (t *RouteTable) Resolve(r Role, subPath string) (entry RouteEntry, home RouteEntry, ok bool) {
	entries := t.routes[r]
	if len(entries) == 0 {
		return RouteEntry{}, RouteEntry{}, false
	}
	for _, e := range entries {
		if e.Path == subPath {
			return e, entries[0], true
		}
	}
	return RouteEntry{}, entries[0], false
}
