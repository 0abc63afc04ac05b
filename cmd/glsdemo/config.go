package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/glsearch/gls"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config stores all configuration of the demo.
// The values are read by viper from glsdemo.env, environment variables or flags.
type Config struct {
	Environment     string  `mapstructure:"ENVIRONMENT"`
	LogLevel        string  `mapstructure:"LOG_LEVEL"`
	Instance        string  `mapstructure:"INSTANCE"`
	IterLimit       int     `mapstructure:"ITER_LIMIT"`
	NoImproveLimit  int     `mapstructure:"NO_IMPROVE_LIMIT"`
	Lambda          float64 `mapstructure:"LAMBDA"`
	Alpha           float64 `mapstructure:"ALPHA"`
	Seed            int64   `mapstructure:"SEED"`
	SparsePenalties bool    `mapstructure:"SPARSE_PENALTIES"`
	Objective       string  `mapstructure:"OBJECTIVE"`
}

// ErrBadObjective indicates an OBJECTIVE value other than "penalty" or "canonical".
var ErrBadObjective = errors.New("glsdemo: unknown objective")

// flag name → config key
var flagKeys = map[string]string{
	"env":              "ENVIRONMENT",
	"log-level":        "LOG_LEVEL",
	"instance":         "INSTANCE",
	"iter-limit":       "ITER_LIMIT",
	"no-improve-limit": "NO_IMPROVE_LIMIT",
	"lambda":           "LAMBDA",
	"alpha":            "ALPHA",
	"seed":             "SEED",
	"sparse":           "SPARSE_PENALTIES",
	"objective":        "OBJECTIVE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("INSTANCE", "")
	v.SetDefault("ITER_LIMIT", 150)
	v.SetDefault("NO_IMPROVE_LIMIT", 20)
	v.SetDefault("LAMBDA", 0.0)
	v.SetDefault("ALPHA", 0.3)
	v.SetDefault("SEED", 0)
	v.SetDefault("SPARSE_PENALTIES", false)
	v.SetDefault("OBJECTIVE", gls.PenaltyOnly.String())
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("glsdemo", pflag.ContinueOnError)
	fs.String("env", "development", "environment; development enables console logging")
	fs.String("log-level", "info", "zerolog level")
	fs.String("instance", "", "TSPLIB or XY file; empty runs the embedded berlin52")
	fs.Int("iter-limit", 150, "outer GLS iterations")
	fs.Int("no-improve-limit", 20, "local search stops after this many non-improving moves")
	fs.Float64("lambda", 0, "penalty weight; 0 derives it from --alpha")
	fs.Float64("alpha", 0.3, "lambda = alpha * cost(local optimum) / n")
	fs.Int64("seed", 0, "random seed; 0 selects the default seed")
	fs.Bool("sparse", false, "store penalties in a map instead of a dense matrix")
	fs.String("objective", gls.PenaltyOnly.String(), "local search objective: penalty or canonical")
	return fs
}

// LoadConfig reads configuration from path/glsdemo.env, environment variables
// and command-line args, in increasing order of precedence. A missing config
// file is not an error.
func LoadConfig(path string, args []string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("glsdemo")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	fs := newFlagSet()
	if err = fs.Parse(args); err != nil {
		return
	}
	for name, key := range flagKeys {
		if err = v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	config.Objective = strings.ToLower(strings.TrimSpace(config.Objective))
	_, err = config.SearchObjective()
	return
}

// SearchObjective maps the OBJECTIVE setting to a gls.Objective.
func (c Config) SearchObjective() (gls.Objective, error) {
	switch c.Objective {
	case gls.PenaltyOnly.String(), "":
		return gls.PenaltyOnly, nil
	case gls.Canonical.String():
		return gls.Canonical, nil
	default:
		return gls.PenaltyOnly, fmt.Errorf("%w: %q", ErrBadObjective, c.Objective)
	}
}
