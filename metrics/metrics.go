// Package metrics exposes Prometheus instrumentation for puzzle generation,
// cut handling and mesh output.
//
// A nil *Collector is valid and records nothing, so instrumented packages
// never need to branch on whether metrics are enabled.
//
// Contract:
//   - NewCollector registers on the given Registerer only; nothing touches the
//     global default registry.
//   - Registering twice on one registry is an error, not a panic.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "perplexing"

// Verdict labels of CutsTotal.
const (
	VerdictCorrect = "correct"
	VerdictStrike  = "strike"
	VerdictIgnored = "ignored"
)

// Collector holds every metric the module records.
type Collector struct {
	// GenerationAttempts observes how many candidate layouts were drawn per
	// accepted puzzle.
	GenerationAttempts prometheus.Histogram

	// CutsTotal counts cut operations that changed or were refused by a
	// machine. Labels: verdict (correct, strike, ignored)
	CutsTotal *prometheus.CounterVec

	// SolvesTotal counts modules driven to the solved state.
	SolvesTotal prometheus.Counter

	// MeshTriangles observes triangle counts of generated meshes.
	// Labels: piece, fidelity
	MeshTriangles *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them with reg.
// Registration errors (duplicate collectors) are returned unchanged.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		GenerationAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_attempts",
			Help:      "Candidate layouts drawn per accepted puzzle",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 50},
		}),
		CutsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cuts_total",
			Help:      "Wire cuts by verdict",
		}, []string{"verdict"}),
		SolvesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Modules solved",
		}),
		MeshTriangles: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mesh_triangles",
			Help:      "Triangles per generated wire mesh",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 10),
		}, []string{"piece", "fidelity"}),
	}

	for _, m := range []prometheus.Collector{c.GenerationAttempts, c.CutsTotal, c.SolvesTotal, c.MeshTriangles} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ObserveAttempts records the attempt count of one accepted puzzle.
func (c *Collector) ObserveAttempts(n int) {
	if c == nil {
		return
	}
	c.GenerationAttempts.Observe(float64(n))
}

// ObserveCut counts one cut with the given verdict label.
func (c *Collector) ObserveCut(verdict string) {
	if c == nil {
		return
	}
	c.CutsTotal.WithLabelValues(verdict).Inc()
}

// ObserveSolve counts one solved module.
func (c *Collector) ObserveSolve() {
	if c == nil {
		return
	}
	c.SolvesTotal.Inc()
}

// ObserveMesh records the triangle count of one mesh.
func (c *Collector) ObserveMesh(piece, fidelity string, triangles int) {
	if c == nil {
		return
	}
	c.MeshTriangles.WithLabelValues(piece, fidelity).Observe(float64(triangles))
}

