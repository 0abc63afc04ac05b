// Command glsdemo runs Guided Local Search on a TSPLIB or XY instance (the
// embedded berlin52 by default) and prints the best tour found.
//
// Configuration comes from glsdemo.env in the working directory, environment
// variables and flags; see Config.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/katalvlaran/glsearch/gls"
	"github.com/katalvlaran/glsearch/tsplib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := LoadConfig(".", os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("log_level", config.LogLevel).Msg("cannot parse log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	logger := log.With().Str("run_id", uuid.NewString()).Logger()
	if err = run(ctx, config, logger, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("search failed")
	}
}

// loadInstance reads config.Instance, or returns berlin52 when it is empty.
func loadInstance(config Config) (*tsplib.Instance, error) {
	if config.Instance == "" {
		return tsplib.Berlin52(), nil
	}
	return tsplib.Load(config.Instance)
}

// deriveLambda returns config.Lambda, or α·cost/n where cost is the raw cost
// of one plain local search from a seeded random tour.
func deriveLambda(config Config, cities []gls.City) float64 {
	if config.Lambda != 0 {
		return config.Lambda
	}
	var (
		n   = len(cities)
		rng = gls.DeriveRand(gls.NewRand(config.Seed), 1)
		c   = gls.Candidate{Tour: gls.RandomTour(n, rng)}
		ev  = gls.Evaluator{
			Cities:    cities,
			Penalties: gls.NewPenaltyTable(n),
			Objective: gls.Canonical,
		}
	)
	gls.LocalSearch(&c, ev, config.NoImproveLimit, rng)
	return gls.LambdaFromAlpha(config.Alpha, c.RawCost, n)
}

// run executes one configured search and writes the result to out.
func run(ctx context.Context, config Config, logger zerolog.Logger, out io.Writer) error {
	in, err := loadInstance(config)
	if err != nil {
		return fmt.Errorf("load instance: %w", err)
	}
	objective, err := config.SearchObjective()
	if err != nil {
		return err
	}
	if len(in.Cities) < gls.MinCities {
		return fmt.Errorf("instance %s: %w", in.Name, gls.ErrTooFewCities)
	}
	if config.NoImproveLimit <= 0 {
		return gls.ErrBadNoImproveLimit
	}

	lambda := deriveLambda(config, in.Cities)
	logger = logger.With().Str("instance", in.Name).Logger()
	logger.Info().
		Int("cities", in.Len()).
		Int("iter_limit", config.IterLimit).
		Int("no_improve_limit", config.NoImproveLimit).
		Float64("lambda", lambda).
		Stringer("objective", objective).
		Bool("sparse", config.SparsePenalties).
		Int64("seed", config.Seed).
		Msg("starting search")

	opts := []gls.Option{
		gls.WithContext(ctx),
		gls.WithSeed(config.Seed),
		gls.WithObjective(objective),
		gls.WithOnIteration(func(s gls.IterationStats) {
			logger.Debug().
				Int("iter", s.Iter).
				Float64("raw", s.Current.RawCost).
				Float64("augmented", s.Current.AugmentedCost).
				Float64("best", s.BestRawCost).
				Bool("improved", s.Improved).
				Int("accepted", s.Accepted).
				Int("penalized", s.Penalized).
				Msg("iteration")
		}),
	}
	if config.SparsePenalties {
		opts = append(opts, gls.WithSparsePenalties())
	}

	best, err := gls.Search(in.Cities, config.IterLimit, config.NoImproveLimit, lambda, opts...)
	if err != nil {
		if len(best.Tour) == 0 {
			return err
		}
		logger.Warn().Err(err).Msg("search interrupted, reporting best so far")
	}

	event := logger.Info().Float64("best_cost", best.RawCost)
	if in.Name == "berlin52" {
		event = event.Float64("gap_pct", 100*(best.RawCost-tsplib.Berlin52Optimum)/tsplib.Berlin52Optimum)
	}
	event.Msg("search finished")

	_, err = fmt.Fprintf(out, "instance: %s\ncost: %.2f\ntour: %s\n", in.Name, best.RawCost, gls.DebugString(best.Tour))
	return err
}
