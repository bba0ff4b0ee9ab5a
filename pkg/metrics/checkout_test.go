package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestCheckoutMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewCheckoutMetrics(reg)
	metrics.IncAttempt(OutcomePlaced)
	metrics.IncAttempt(OutcomeInvalid)
	metrics.IncAttempt(OutcomeInvalid)
	metrics.IncFieldErrors([]string{"cvv", "city"})
	metrics.ObserveProcessing(250 * time.Millisecond)
	metrics.AddRevenue(53.19)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "checkout_attempts_total", "outcome", OutcomeInvalid); err != nil {
		t.Fatalf("fetch invalid: %v", err)
	} else if got != 2 {
		t.Fatalf("expected invalid=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "checkout_field_errors_total", "field", "cvv"); err != nil {
		t.Fatalf("fetch field errors: %v", err)
	} else if got != 1 {
		t.Fatalf("expected cvv=1, got %f", got)
	}

	mf := findMetricFamily(mfs, "checkout_processing_duration_seconds")
	if mf == nil || len(mf.GetMetric()) != 1 {
		t.Fatalf("expected processing histogram")
	}
	if sum := mf.GetMetric()[0].GetHistogram().GetSampleSum(); sum <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", sum)
	}

	revenue := findMetricFamily(mfs, "checkout_revenue_total")
	if revenue == nil || revenue.GetMetric()[0].GetCounter().GetValue() != 53.19 {
		t.Fatalf("expected revenue 53.19")
	}
}

func TestNilCheckoutMetricsAreNoops(t *testing.T) {
	var metrics *CheckoutMetrics
	metrics.IncAttempt(OutcomeFailed)
	metrics.IncFieldErrors([]string{"cvv"})
	metrics.ObserveProcessing(time.Second)
	metrics.AddRevenue(1)

	unregistered := NewCheckoutMetrics(nil)
	unregistered.IncAttempt(OutcomeFailed)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
