package monitoring

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsCarryServiceNamespace(t *testing.T) {
	counterDesc := RequestCounter.WithLabelValues("GET", "/api/health", "200").Desc().String()
	if !strings.Contains(counterDesc, "ielts_http_requests_total") {
		t.Errorf("request counter descriptor lacks the service namespace: %s", counterDesc)
	}

	histogram, ok := RequestDuration.WithLabelValues("GET", "/api/health").(prometheus.Metric)
	if !ok {
		t.Fatal("request duration observer is not a prometheus.Metric")
	}
	if desc := histogram.Desc().String(); !strings.Contains(desc, "ielts_http_request_duration_seconds") {
		t.Errorf("request duration descriptor lacks the service namespace: %s", desc)
	}
}
