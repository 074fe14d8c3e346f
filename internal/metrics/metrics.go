// Package metrics exports viewer activity as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"xtalview/internal/interact"
	"xtalview/internal/viewer"
)

const namespace = "xtalview"

// Metrics observes a viewer and records its events.
type Metrics struct {
	reg *prometheus.Registry

	loads           prometheus.Counter
	atoms           prometheus.Gauge
	bonds           prometheus.Gauge
	representations *prometheus.CounterVec
	picks           *prometheus.CounterVec
	measurements    prometheus.Counter
	distances       prometheus.Histogram
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		loads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "structure_loads_total",
			Help:      "Supercell rebuilds caused by loads or replication changes.",
		}),
		atoms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "supercell_atoms",
			Help:      "Atoms in the current supercell.",
		}),
		bonds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "supercell_bonds",
			Help:      "Bonds in the current supercell.",
		}),
		representations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "representation_changes_total",
			Help:      "Representation switches by target mode.",
		}, []string{"mode"}),
		picks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "picks_total",
			Help:      "Pick events by outcome.",
		}, []string{"result"}),
		measurements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "measurements_total",
			Help:      "Completed two-atom distance measurements.",
		}),
		distances: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "measured_distance_angstrom",
			Help:      "Distribution of measured inter-atomic distances.",
			Buckets:   prometheus.LinearBuckets(0.5, 0.5, 20),
		}),
	}
	m.reg.MustRegister(m.loads, m.atoms, m.bonds, m.representations, m.picks, m.measurements, m.distances)
	return m
}

// ViewerEvent implements viewer.Observer.
func (m *Metrics) ViewerEvent(e viewer.Event) {
	switch e.Kind {
	case viewer.EventLoaded:
		m.loads.Inc()
		m.atoms.Set(float64(e.Supercell.Len()))
		m.bonds.Set(float64(len(e.Supercell.Bonds)))
	case viewer.EventRepresentation:
		m.representations.WithLabelValues(e.Mode.Key()).Inc()
	case viewer.EventPicked:
		result := "miss"
		if e.Pick.Hit {
			result = "hit"
		}
		m.picks.WithLabelValues(result).Inc()
	case viewer.EventMeasurement:
		if e.Measurement.Phase == interact.Complete {
			m.measurements.Inc()
			m.distances.Observe(e.Measurement.Distance)
		}
	}
}

// Registry returns the registry holding the viewer collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics listening", "addr", addr)
	err := srv.ListenAndServe()
	close(done)
	<-stopped
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}
