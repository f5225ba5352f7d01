// Package metrics defines and registers all custom Prometheus metrics
// for the RentWise property system. It is the single source of truth
// for metric names, labels, and help strings.
//
// The promauto constructors register everything with the default
// Prometheus registry at package init; the /metrics endpoint is wired
// by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rentwise"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
// Label:
//   - role: "OWNER" or "TENANT" (ADMIN cannot self-register)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// TokenRevocationsTotal counts tokens revoked by server-side logout.
var TokenRevocationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_revocations_total",
		Help:      "Total number of bearer tokens revoked via logout.",
	},
)

// MaintenanceCreatedTotal counts new maintenance requests.
// Label:
//   - priority: the priority reported by the caller (e.g. "high")
var MaintenanceCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "maintenance_created_total",
		Help:      "Total number of maintenance requests created, by priority.",
	},
	[]string{"priority"},
)

// PaymentsRecordedTotal counts recorded rent payments.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of rent payments recorded.",
	},
)
