// Package metrics defines the portal's domain counters. Metrics register with
// the default Prometheus registry on import and are served at /metrics next to
// the per-route HTTP metrics from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bloodchain"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
// Labels:
//   - role: the claimed role (e.g. "Donor")
//   - form: "login" or "register"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of logins, by role and originating form.",
	},
	[]string{"role", "form"},
)

// LogoutsTotal counts logouts.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts.",
	},
)

// RoleSwitchesTotal counts navbar role changes.
// Label:
//   - to: the newly selected role
var RoleSwitchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_switches_total",
		Help:      "Total number of role switches, by target role.",
	},
	[]string{"to"},
)

// RedirectsTotal counts navigation gate redirects.
// Label:
//   - reason: authenticated, role_mismatch, unknown_subpath, unauthenticated, unknown_path
var RedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigation_redirects_total",
		Help:      "Total number of redirects issued by the navigation gate, by reason.",
	},
	[]string{"reason"},
)

// FormRejectionsTotal counts submissions turned away by validation.
// Label:
//   - form: "login", "register", or the page id of a portal form, e.g. "blood-request", "inventory"
var FormRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "form_rejections_total",
		Help:      "Total number of form submissions rejected by validation, by form.",
	},
	[]string{"form"},
)

// ── Feature metrics ───────────────────────────────────────────────────────────

// DonationsScheduledTotal counts confirmed donation appointments.
var DonationsScheduledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_scheduled_total",
		Help:      "Total number of confirmed donation appointments.",
	},
)

// RewardRedemptionsTotal counts redemption attempts.
// Label:
//   - result: "ok", "insufficient" (balance below cost) or "rejected"
var RewardRedemptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reward_redemptions_total",
		Help:      "Total number of reward redemption attempts, by result.",
	},
	[]string{"result"},
)

// BloodRequestsTotal counts submitted blood requests.
// Label:
//   - urgency: Critical, Urgent, Moderate or Low
var BloodRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blood_requests_total",
		Help:      "Total number of submitted blood requests, by urgency.",
	},
	[]string{"urgency"},
)

// InventoryUpdatesTotal counts applied unit status changes.
// Label:
//   - action: reserve, use, expire or return
var InventoryUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_updates_total",
		Help:      "Total number of blood unit status updates, by action.",
	},
	[]string{"action"},
)

// TrackingLookupsTotal counts donation tracking searches.
// Label:
//   - result: "found", "not_found" or "empty"
var TrackingLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_lookups_total",
		Help:      "Total number of donation tracking lookups, by result.",
	},
	[]string{"result"},
)

// UserUpdatesTotal counts saved user edits.
var UserUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_updates_total",
		Help:      "Total number of user directory edits saved.",
	},
)
