// Package metrics defines and registers all custom Prometheus metrics for the
// SneakStreet storefront. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry on
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - outcome: "success", "invalid_credentials", "throttled" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// AuthorizationDecisionsTotal counts route guard decisions on admin paths.
// Labels:
//   - state: "guest", "client" or "admin"
//   - decision: "allow" or "redirect"
var AuthorizationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_decisions_total",
		Help:      "Total number of admin route authorization decisions.",
	},
	[]string{"state", "decision"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductMutationsTotal counts admin writes to the catalog.
// Label:
//   - op: "create", "update" or "delete"
var ProductMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_mutations_total",
		Help:      "Total number of catalog mutations, by operation.",
	},
	[]string{"op"},
)

// ── Checkout metrics ──────────────────────────────────────────────────────────

// CheckoutsTotal counts completed checkouts.
// Label:
//   - shipping_method: "standard", "express" or "urgent"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of simulated checkouts, by shipping method.",
	},
	[]string{"shipping_method"},
)

// OrdersRecordedTotal counts orders persisted by the dispatcher.
var OrdersRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_recorded_total",
		Help:      "Total number of orders persisted, by shipping method.",
	},
	[]string{"shipping_method"},
)

// OrdersErrorsTotal counts orders that could not be recorded.
// Label:
//   - reason: "queue_full", "record_failed" or "dropped_on_shutdown"
var OrdersErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_errors_total",
		Help:      "Total number of orders that failed to be recorded.",
	},
	[]string{"reason"},
)

// OrdersQueueDepth tracks the number of orders waiting in each worker channel.
var OrdersQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "orders_queue_depth",
		Help:      "Current number of orders pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
