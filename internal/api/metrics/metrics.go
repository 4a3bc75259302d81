// Package metrics defines and registers all custom Prometheus metrics for
// the blood donation API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blood_donation"

// DonorsRegisteredTotal counts successful donor registrations.
// Label:
//   - blood_group: the donor's blood group (e.g. "O+")
var DonorsRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donors_registered_total",
		Help:      "Total number of donors registered, by blood group.",
	},
	[]string{"blood_group"},
)

// DonorSearchesTotal counts public donor searches.
// Label:
//   - filtered: "yes" when a blood group or city filter was applied, "no" otherwise
var DonorSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donor_searches_total",
		Help:      "Total number of donor directory searches.",
	},
	[]string{"filtered"},
)

// RequestsSubmittedTotal counts blood requests submitted.
// Labels:
//   - blood_group: the required blood group
//   - urgency: the request urgency level
var RequestsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_submitted_total",
		Help:      "Total number of blood requests submitted, by group and urgency.",
	},
	[]string{"blood_group", "urgency"},
)

// RequestStatusTransitionsTotal counts administrator status updates.
// Label:
//   - status: the status the request was moved to
var RequestStatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_status_transitions_total",
		Help:      "Total number of request status transitions, by target status.",
	},
	[]string{"status"},
)

// AdminLoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)
