// Package metrics exports user service measurements in the Prometheus format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/carlosebw/crudify/internal/model"
)

const namespace = "crudify"

var _ model.MetricsRecorder = (*Recorder)(nil)

// Recorder implements model.MetricsRecorder on top of Prometheus collectors.
type Recorder struct {
	mutations        *prometheus.CounterVec
	mutationDuration *prometheus.HistogramVec
	refreshes        *prometheus.CounterVec
	listSize         prometheus.Gauge
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewRecorder creates the user collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_mutations_total",
			Help:      "User mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		mutationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "user_mutation_duration_seconds",
			Help:      "Time spent in the store per user mutation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_list_refreshes_total",
			Help:      "User list reloads by outcome.",
		}, []string{"outcome"}),
		listSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "user_list_size",
			Help:      "Number of users in the current list snapshot.",
		}),
	}

	reg.MustRegister(r.mutations, r.mutationDuration, r.refreshes, r.listSize)

	return r
}

func (r *Recorder) ObserveMutation(op model.Operation, outcome model.Outcome, duration time.Duration) {
	r.mutations.WithLabelValues(string(op), string(outcome)).Inc()
	r.mutationDuration.WithLabelValues(string(op)).Observe(duration.Seconds())
}

// ObserveRefresh counts a reload. size is the snapshot length after the
// reload, which is the previous one when err is non-nil.
func (r *Recorder) ObserveRefresh(size int, err error, _ time.Duration) {
	outcome := model.OutcomeSuccess
	if err != nil {
		outcome = model.OutcomeError
	}
	r.refreshes.WithLabelValues(string(outcome)).Inc()
	r.listSize.Set(float64(size))
}
