package app

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/suxatcode/nbody-barnes-hut/middleware"
	"github.com/suxatcode/nbody-barnes-hut/quadtree"
	"github.com/suxatcode/nbody-barnes-hut/simulation"
)

// Run reads bodies from in, simulates conf.Steps steps and writes the
// resulting bodies to out.
func Run(ctx context.Context, conf Config, in io.Reader, out io.Writer) (simulation.Stats, error) {
	simConf, err := conf.SimulationConfig()
	if err != nil {
		return simulation.Stats{}, err
	}
	sim, err := simulation.NewSimulation(simConf)
	if err != nil {
		return simulation.Stats{}, err
	}
	doc, err := DecodeDocument(in)
	if err != nil {
		return simulation.Stats{}, err
	}
	log.Info().Msgf("simulating %d bodies for %d steps, config: %#v", len(doc.Bodies), conf.Steps, sim.Config())
	regions, stats := sim.Run(ctx, simulation.Bodies(doc.Bodies), conf.TimeStep, conf.Steps)
	log.Info().Msgf(
		"simulation finished: stats{iterations: %d, time: %d ms, out of bounds: %d}",
		stats.Iterations,
		stats.TotalTime.Milliseconds(),
		stats.OutOfBounds,
	)
	if conf.PNGOutput != "" && regions != nil {
		bounds := quadtree.Rect{X: 0, Y: 0, Width: simConf.Width, Height: simConf.Height}
		if err := drawRegions(regions, doc.Bodies, bounds, conf.PNGOutput, false); err != nil {
			return stats, err
		}
		log.Info().Msgf("regions drawn to '%s'", conf.PNGOutput)
	}
	return stats, EncodeDocument(out, doc)
}

func metricsHandler() http.Handler {
	handler := http.NewServeMux()
	handler.Handle("/metrics", middleware.AddLogging(promhttp.Handler()))
	return handler
}

// ServeMetrics serves prometheus metrics on addr until the returned server is
// shut down.
func ServeMetrics(addr string) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           metricsHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Msgf("serving metrics on http://%s/metrics", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Msgf("metrics server: %v", err)
		}
	}()
	return server
}
