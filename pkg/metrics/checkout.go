package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Checkout outcomes recorded on the attempts counter.
const (
	OutcomePlaced     = "placed"
	OutcomeInvalid    = "invalid"
	OutcomeFailed     = "failed"
	OutcomeEmptyCart  = "empty_cart"
	OutcomeInProgress = "in_progress"
)

// CheckoutMetrics records checkout submissions and the payment step latency.
type CheckoutMetrics struct {
	attempts   *prometheus.CounterVec
	fieldError *prometheus.CounterVec
	processing prometheus.Histogram
	revenue    prometheus.Counter
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_attempts_total",
		Help: "Checkout submissions by outcome.",
	}, []string{"outcome"})
	fieldError := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_field_errors_total",
		Help: "Checkout validation errors by form field.",
	}, []string{"field"})
	processing := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_processing_duration_seconds",
		Help:    "Duration of the payment processing step in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	revenue := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_revenue_total",
		Help: "Sum of placed order totals.",
	})
	reg.MustRegister(attempts, fieldError, processing, revenue)
	return &CheckoutMetrics{
		attempts:   attempts,
		fieldError: fieldError,
		processing: processing,
		revenue:    revenue,
	}
}

// IncAttempt increments the attempts counter for the outcome.
func (c *CheckoutMetrics) IncAttempt(outcome string) {
	if c == nil || c.attempts == nil {
		return
	}
	c.attempts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncFieldErrors counts one error per rejected field.
func (c *CheckoutMetrics) IncFieldErrors(fields []string) {
	if c == nil || c.fieldError == nil {
		return
	}
	for _, field := range fields {
		c.fieldError.WithLabelValues(normalizeLabel(field)).Inc()
	}
}

// ObserveProcessing records the payment step duration.
func (c *CheckoutMetrics) ObserveProcessing(duration time.Duration) {
	if c == nil || c.processing == nil {
		return
	}
	c.processing.Observe(duration.Seconds())
}

// AddRevenue adds a placed order total.
func (c *CheckoutMetrics) AddRevenue(total float64) {
	if c == nil || c.revenue == nil || total < 0 {
		return
	}
	c.revenue.Add(total)
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
