package main

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nntour/tsp"
)

//**********************************************************
// config
//**********************************************************

// Config mirrors the command line flags; explicitly set flags override it.
type Config struct {
	Instance     string `yaml:"instance"`
	Output       string `yaml:"output"`
	InstancesDir string `yaml:"instances_dir"`
	ResultsDir   string `yaml:"results_dir"`
	Trials       int    `yaml:"trials"`
	Seed         int64  `yaml:"seed"`
	Workers      int    `yaml:"workers"`
	WriteIDs     bool   `yaml:"write_ids"`
	LogLevel     string `yaml:"log_level"`
}

// DefaultConfig holds the built-in settings. Seed is timeSeed, so each run
// draws fresh alphas unless a file or -seed pins one (0 is the fixed stream).
func DefaultConfig() Config {
	opts := tsp.DefaultOptions()
	return Config{
		InstancesDir: "instances",
		ResultsDir:   "results",
		Trials:       opts.Trials,
		Seed:         timeSeed,
		Workers:      opts.Workers,
		LogLevel:     "info",
	}
}

// ReadConfig decodes file over DefaultConfig, so absent keys keep their
// defaults. Unknown keys are rejected; an empty file yields the defaults.
func ReadConfig(file string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(file)
	if err != nil {
		return config, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, err
	}
	return config, nil
}

// Options converts the run settings for tsp.RunTrials.
func (c Config) Options() tsp.Options {
	return tsp.Options{
		Trials:  c.Trials,
		Seed:    c.Seed,
		Workers: c.Workers,
	}
}
