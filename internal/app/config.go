package app

import (
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/suxatcode/nbody-barnes-hut/simulation"
)

type Config struct {
	Production bool `env:"PRODUCTION" envDefault:"false"`
	// Levels are {trace, debug, info, warn, error, fatal, panic}.
	// See github.com/rs/zerolog@v1.32.0/log.go for possible values.
	LogLevel string `env:"LOGLEVEL" envDefault:"info"`
	// MetricsAddr enables a prometheus /metrics endpoint, e.g. ":9090".
	MetricsAddr string `env:"METRICS_ADDR" envDefault:""`

	FieldWidth  float64 `env:"FIELD_WIDTH" envDefault:"1000"`
	FieldHeight float64 `env:"FIELD_HEIGHT" envDefault:"1000"`
	Theta       float64 `env:"THETA" envDefault:"1.2"`
	Gravity     float64 `env:"GRAVITY" envDefault:"1e-6"`
	TimeStep    float64 `env:"TIMESTEP" envDefault:"1"`
	Steps       int     `env:"STEPS" envDefault:"1"`
	// 0 uses one goroutine per CPU.
	Parallelization int `env:"PARALLELIZATION" envDefault:"0"`
	// 0 uses the quadtree default.
	MaxTreeDepth int `env:"MAX_TREE_DEPTH" envDefault:"0"`
	// one of {four-stage, rk4}
	Integrator string `env:"INTEGRATOR" envDefault:"four-stage"`
	// PNGOutput is a file the final quadtree regions and bodies are drawn to.
	PNGOutput string `env:"PNG_OUTPUT" envDefault:""`
}

func GetEnvConfig() (Config, error) {
	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		return conf, errors.Wrap(err, "failed to parse environment")
	}
	return conf, nil
}

func (conf Config) SimulationConfig() (simulation.Config, error) {
	integrator, ok := simulation.ParseIntegrator(conf.Integrator)
	if !ok {
		return simulation.Config{}, errors.Errorf("unknown integrator '%s'", conf.Integrator)
	}
	if conf.Steps < 0 {
		return simulation.Config{}, errors.Errorf("number of steps must not be negative, got %d", conf.Steps)
	}
	return simulation.Config{
		Width:           conf.FieldWidth,
		Height:          conf.FieldHeight,
		Theta:           conf.Theta,
		G:               conf.Gravity,
		Parallelization: conf.Parallelization,
		MaxTreeDepth:    conf.MaxTreeDepth,
		Integrator:      integrator,
	}, nil
}

// SetupLogging configures the global zerolog logger.
func SetupLogging(conf Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		println("failed to parse LogLevel: '" + conf.LogLevel + "', setting to info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if !conf.Production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
