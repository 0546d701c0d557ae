// Package metrics defines and registers all custom Prometheus metrics for the
// ordering API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry on import via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ordering"

// IntentsCreatedTotal counts payment intents successfully minted by the
// gateway adapter.
var IntentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_created_total",
		Help:      "Total number of payment intents created with the processor.",
	},
)

// GatewayErrorsTotal counts payment processor calls that failed.
var GatewayErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_gateway_errors_total",
		Help:      "Total number of failed payment processor calls.",
	},
)

// PaymentsConfirmedTotal counts fully settled checkouts (payment recorded and
// cart purged).
var PaymentsConfirmedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_confirmed_total",
		Help:      "Total number of confirmed payments.",
	},
)

// CartItemsPurgedTotal counts cart rows removed by checkout purges.
var CartItemsPurgedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_items_purged_total",
		Help:      "Total number of cart items purged after payment confirmation.",
	},
)

// PaymentAmount observes the major-unit amount of each confirmed payment.
var PaymentAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_amount",
		Help:      "Distribution of confirmed payment amounts in major units.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500},
	},
)
