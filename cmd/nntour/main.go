// Command nntour builds bottleneck-oriented tours over a planar instance with
// the alpha-weighted nearest-neighbor heuristic and saves the best one.
//
// Usage:
//
//	nntour [-config file.yaml] [-instance name] [-out name] [-trials k]
//	       [-seed s] [-workers w] [-ids] [-log-level level]
//
// Missing -instance or -out values are asked for on stdin. Bare names are
// resolved under the instances and results directories.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/nntour/tsp"
	"github.com/katalvlaran/nntour/tsplib"
)

// timeSeed asks for a clock-derived seed instead of a reproducible one.
const timeSeed = -1

var errNoAnswer = errors.New("no answer given")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("nntour", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	instance := fs.String("instance", "", "instance file (bare names resolve under -instances-dir)")
	output := fs.String("out", "", "result file for the best tour (bare names resolve under -results-dir)")
	instancesDir := fs.String("instances-dir", "", "directory of instance files")
	resultsDir := fs.String("results-dir", "", "directory of result files")
	trials := fs.Int("trials", 0, "number of trials")
	seed := fs.Int64("seed", timeSeed, "alpha seed; -1 = from the clock, 0 = fixed default")
	workers := fs.Int("workers", 0, "concurrent trials (1 = sequential)")
	writeIDs := fs.Bool("ids", false, "write city ids instead of positions")
	logLevel := fs.String("log-level", "", "debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = ReadConfig(*configPath); err != nil {
			return fmt.Errorf("config %s: %w", *configPath, err)
		}
	}

	// Explicitly set flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "instance":
			cfg.Instance = *instance
		case "out":
			cfg.Output = *output
		case "instances-dir":
			cfg.InstancesDir = *instancesDir
		case "results-dir":
			cfg.ResultsDir = *resultsDir
		case "trials":
			cfg.Trials = *trials
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "ids":
			cfg.WriteIDs = *writeIDs
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(NewLogHandler(stderr, &slog.HandlerOptions{Level: level}))

	in := bufio.NewReader(stdin)
	if cfg.Instance == "" {
		if cfg.Instance, err = ask(in, stdout, "Instance name: "); err != nil {
			return fmt.Errorf("instance: %w", err)
		}
	}
	if cfg.Output == "" {
		if cfg.Output, err = ask(in, stdout, "Result file name: "); err != nil {
			return fmt.Errorf("output: %w", err)
		}
	}
	if cfg.Seed == timeSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	instancePath := resolve(cfg.InstancesDir, cfg.Instance)
	outputPath := resolve(cfg.ResultsDir, cfg.Output)

	logger.Info("reading instance", "path", instancePath)
	cities, err := tsplib.ReadCitiesFile(instancePath)
	if err != nil {
		return err
	}
	dist, err := tsp.DistanceMatrix(cities)
	if err != nil {
		return err
	}
	logger.Debug("distance matrix ready", "cities", len(cities))

	logger.Info("running trials", "trials", cfg.Trials, "seed", cfg.Seed, "workers", cfg.Workers)
	rep, err := tsp.RunTrials(ctx, dist, cfg.Options())
	if err != nil {
		return err
	}
	for _, tr := range rep.Trials {
		logger.Debug("trial", "n", tr.Trial, "alpha", tr.Alpha, "bottleneck", tr.Bottleneck,
			"length", tr.Length, "elapsed", tr.Elapsed)
	}

	best := rep.BestTrial().Tour
	if cfg.WriteIDs {
		if best, err = tsp.TourIDs(best, cities); err != nil {
			return err
		}
	}
	if err := tsplib.WriteTourFile(outputPath, best); err != nil {
		return err
	}
	logger.Info("best tour written", "path", outputPath, "trial", rep.Best)

	printReport(stdout, rep, outputPath)
	return nil
}

// ask prints prompt and returns the next trimmed line of input.
func ask(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errNoAnswer
	}
	return line, nil
}

// resolve joins bare file names under dir; anything with a directory part is kept.
func resolve(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) || strings.Contains(name, "/") {
		return name
	}
	return filepath.Join(dir, name)
}

func printReport(w io.Writer, rep tsp.Report, path string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Results ---")
	fmt.Fprintf(w, "Best:         %.2f\n", rep.BestCost)
	fmt.Fprintf(w, "Worst:        %.2f\n", rep.WorstCost)
	fmt.Fprintf(w, "Average:      %.2f\n", rep.MeanCost)
	fmt.Fprintf(w, "Average time: %.4f s\n", rep.MeanElapsed.Seconds())
	fmt.Fprintf(w, "\nBest tour saved to '%s'.\n", path)
}
