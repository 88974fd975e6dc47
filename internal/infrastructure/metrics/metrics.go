package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds the Prometheus instruments for the order ledger and the
// receipt intake path.
type OrderMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec

	OrderStatusChangesTotal prometheus.CounterVec

	ReceiptsUploadedTotal  prometheus.CounterVec
	ReceiptsDuplicateTotal prometheus.Counter
	ReceiptVerdictsTotal   prometheus.CounterVec

	OrderCodeRetriesTotal prometheus.Counter

	ValidationTriggerDuration prometheus.HistogramVec

	OrderErrorsTotal prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders created, by pickup location and currency",
			},
			[]string{"location_id", "currency"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total amount of created orders",
			},
			[]string{"currency"},
		),

		OrderStatusChangesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_status_changes_total",
				Help: "Status transitions applied, by from/to pair",
			},
			[]string{"from", "to"},
		),

		ReceiptsUploadedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receipts_uploaded_total",
				Help: "Receipt images accepted for validation",
			},
			[]string{"currency"},
		),

		ReceiptsDuplicateTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "receipts_duplicate_total",
				Help: "Receipt uploads rejected by the dedup guard",
			},
		),

		ReceiptVerdictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receipt_verdicts_total",
				Help: "Validation verdicts applied, by outcome",
			},
			[]string{"outcome"},
		),

		OrderCodeRetriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "order_code_retries_total",
				Help: "Order code generation retries after a collision",
			},
		),

		ValidationTriggerDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "validation_trigger_duration_seconds",
				Help:    "Time spent triggering the external validation workflow",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"success"},
		),

		OrderErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_errors_total",
				Help: "Order ledger errors, by operation and kind",
			},
			[]string{"operation", "kind"},
		),
	}
}
