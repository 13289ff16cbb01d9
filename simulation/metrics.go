package simulation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusLabel = "status"

	statusUpdated     = "updated"
	statusOutOfBounds = "out_of_bounds"
)

var (
	stepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nbody_step_duration_seconds",
		Help:    "The time it takes to compute one simulation step.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 16),
	})

	stepBodies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nbody_step_bodies_total",
		Help: "The number of bodies processed by simulation steps.",
	}, []string{
		statusLabel,
	})

	quadtreeNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nbody_quadtree_nodes",
		Help: "The number of quadtree nodes built by the last simulation step.",
	})
)

func instrumentStep(duration time.Duration, updated, outOfBounds, nodes int) {
	stepDuration.Observe(duration.Seconds())
	stepBodies.
		With(prometheus.Labels{statusLabel: statusUpdated}).
		Add(float64(updated))
	stepBodies.
		With(prometheus.Labels{statusLabel: statusOutOfBounds}).
		Add(float64(outOfBounds))
	quadtreeNodes.Set(float64(nodes))
}
