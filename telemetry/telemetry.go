// Package telemetry counts search activity with Prometheus collectors.
//
// A Recorder owns a private registry, so independent recorders (one per
// CLI invocation or per test) never collide on metric names. Options
// returns search hooks that count frontier traffic; Observe records the
// outcome of a finished search.
//
// All methods are safe for concurrent use.
package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/statespace/search"
)

const namespace = "statespace"

// Recorder holds the search collectors and their registry.
type Recorder struct {
	reg *prometheus.Registry

	searches *prometheus.CounterVec
	enqueued *prometheus.CounterVec
	dequeued *prometheus.CounterVec
	length   *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// New returns a Recorder with every collector registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Finished searches by problem kind and final status.",
		}, []string{"kind", "status"}),
		enqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_enqueued_total",
			Help:      "Nodes added to a search frontier.",
		}, []string{"kind"}),
		dequeued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_dequeued_total",
			Help:      "Nodes removed from a search frontier.",
		}, []string{"kind"}),
		length: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solution_length",
			Help:      "Number of actions in found solutions.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of finished searches.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"kind"}),
	}
	r.reg.MustRegister(r.searches, r.enqueued, r.dequeued, r.length, r.duration)
	return r
}

// Registry returns the registry holding the Recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Options returns search hooks counting enqueued and dequeued nodes under
// the given kind label.
func (r *Recorder) Options(kind string) []search.Option {
	enq := r.enqueued.WithLabelValues(kind)
	deq := r.dequeued.WithLabelValues(kind)
	return []search.Option{
		search.WithOnEnqueue(func(any, int) { enq.Inc() }),
		search.WithOnDequeue(func(any, int) { deq.Inc() }),
	}
}

// Observe records one finished search. length is the solution length and
// is ignored when negative.
func (r *Recorder) Observe(kind string, st search.Status, length int, elapsed time.Duration) {
	r.searches.WithLabelValues(kind, st.String()).Inc()
	if length >= 0 {
		r.length.WithLabelValues(kind).Observe(float64(length))
	}
	r.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// WriteText writes every gathered metric family to w in the Prometheus
// text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	mfs, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
