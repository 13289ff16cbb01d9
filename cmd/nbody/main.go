/*
 * nbody runs a Barnes-Hut gravity simulation on the bodies received on stdin
 * in json format and writes the advanced bodies to stdout.
 */
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/suxatcode/nbody-barnes-hut/internal/app"
)

func main() {
	conf, err := app.GetEnvConfig()
	if err != nil {
		log.Fatal().Msgf("%v", err)
	}
	app.SetupLogging(conf)
	if conf.MetricsAddr != "" {
		server := app.ServeMetrics(conf.MetricsAddr)
		defer server.Close()
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if _, err := app.Run(ctx, conf, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Msgf("%v", err)
	}
}
