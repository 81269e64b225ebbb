// Package prometheus exports client operation metrics through
// prometheus/client_golang collectors.
package prometheus

import (
	"context"
	"strings"

	"github.com/goliatone/go-stayhooks/core"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "stayhooks"

// Labels shared by both collectors. Tags the client does not set are exported
// as empty strings so the label set stays fixed.
var labelNames = []string{"operation", "status", "action", "status_code", "error_kind"}

var durationBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}

type Recorder struct {
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// NewRecorder builds the collectors and registers them with registerer. A nil
// registerer leaves registration to the caller.
func NewRecorder(registerer prometheus.Registerer) (*Recorder, error) {
	recorder := &Recorder{
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of StayHere webhook client operations",
			},
			labelNames,
		),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_milliseconds",
				Help:      "Duration of StayHere webhook client operations in milliseconds",
				Buckets:   durationBuckets,
			},
			labelNames,
		),
	}
	if registerer == nil {
		return recorder, nil
	}
	for _, collector := range recorder.Collectors() {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return recorder, nil
}

func (r *Recorder) Collectors() []prometheus.Collector {
	if r == nil {
		return nil
	}
	return []prometheus.Collector{r.OperationsTotal, r.OperationDuration}
}

func (r *Recorder) IncCounter(_ context.Context, name string, value int64, tags map[string]string) {
	if r == nil || r.OperationsTotal == nil || value <= 0 {
		return
	}
	r.OperationsTotal.WithLabelValues(labelValues(name, tags)...).Add(float64(value))
}

func (r *Recorder) ObserveHistogram(_ context.Context, name string, value float64, tags map[string]string) {
	if r == nil || r.OperationDuration == nil {
		return
	}
	r.OperationDuration.WithLabelValues(labelValues(name, tags)...).Observe(value)
}

func labelValues(name string, tags map[string]string) []string {
	values := make([]string, len(labelNames))
	for i, label := range labelNames {
		values[i] = strings.TrimSpace(tags[label])
	}
	if values[0] == "" {
		values[0] = operationFromName(name)
	}
	return values
}

// operationFromName extracts "list_webhooks" from "stayhooks.list_webhooks.total".
func operationFromName(name string) string {
	parts := strings.Split(strings.TrimSpace(name), ".")
	if len(parts) >= 3 {
		return parts[len(parts)-2]
	}
	return ""
}

var _ core.MetricsRecorder = (*Recorder)(nil)
