// Package tsp - trial driver.
//
// RunTrials executes NearestNeighborAlpha k times on one shared, read-only
// distance matrix, each time with its own alpha, scores every tour by its
// bottleneck and summarizes the run.
//
// Determinism:
//   - All alphas are drawn up front, in trial order, from one seeded stream;
//     the report is therefore identical for any worker count.
//   - Best is the first trial (in execution order) with the minimum bottleneck.
package tsp

import (
	"context"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/nntour/matrix"
)

// Options configures RunTrials.
type Options struct {
	// Trials is the number of independent constructions (≥ 1).
	Trials int

	// Seed selects the alpha stream; 0 ⇒ a fixed default seed.
	Seed int64

	// Workers bounds concurrent trials; 0 and 1 both mean sequential.
	Workers int
}

// DefaultOptions returns Trials=DefaultTrials, Seed=0, Workers=1.
func DefaultOptions() Options {
	return Options{
		Trials:  DefaultTrials,
		Seed:    0,
		Workers: 1,
	}
}

// RunTrials validates dist once, then runs opts.Trials constructions and
// returns their summary. Any trial error or ctx cancellation aborts the run
// without a partial report.
//
// Errors: ErrInvalidTrials, ErrInvalidWorkers, the matrix sentinels of
// validateDistMatrix (ErrEmptyInstance first of all), ctx.Err().
//
// Complexity: O(n²) validation + O(k·n²) construction.
func RunTrials(ctx context.Context, dist matrix.Matrix, opts Options) (Report, error) {
	if err := validateOptions(opts); err != nil {
		return Report{}, err
	}
	if _, err := validateDistMatrix(dist); err != nil {
		return Report{}, err
	}

	var (
		alphas  = drawAlphas(opts.Trials, opts.Seed)
		results []TrialResult
		err     error
	)
	if opts.Workers <= 1 {
		results, err = runSequential(ctx, dist, alphas)
	} else {
		results, err = runPool(ctx, dist, alphas, opts.Workers)
	}
	if err != nil {
		return Report{}, err
	}

	return summarize(results), nil
}

// RunTrial performs a single timed construction with the given alpha and
// scores it. The clock brackets only NearestNeighborAlpha.
func RunTrial(dist matrix.Matrix, trial int, alpha float64) (TrialResult, error) {
	start := time.Now()
	tour, err := NearestNeighborAlpha(dist, alpha)
	elapsed := time.Since(start)
	if err != nil {
		return TrialResult{}, err
	}

	bottleneck, err := BottleneckCost(dist, tour)
	if err != nil {
		return TrialResult{}, err
	}
	length, err := TourLength(dist, tour)
	if err != nil {
		return TrialResult{}, err
	}

	return TrialResult{
		Trial:      trial,
		Alpha:      alpha,
		Tour:       tour,
		Bottleneck: bottleneck,
		Length:     length,
		Elapsed:    elapsed,
	}, nil
}

func runSequential(ctx context.Context, dist matrix.Matrix, alphas []float64) ([]TrialResult, error) {
	results := make([]TrialResult, len(alphas))

	var (
		i   int
		err error
	)
	for i = range alphas {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if results[i], err = RunTrial(dist, i, alphas[i]); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// runPool fans trials out to a bounded set of goroutines. Each result lands in
// its own slot, so no locking is needed beyond recording the first error.
func runPool(ctx context.Context, dist matrix.Matrix, alphas []float64, workers int) ([]TrialResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if workers > len(alphas) {
		workers = len(alphas)
	}

	var (
		results  = make([]TrialResult, len(alphas))
		jobs     = make(chan int)
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue // drain
				}
				res, err := RunTrial(dist, i, alphas[i])
				if err != nil {
					fail(err)
					continue
				}
				results[i] = res
			}
		}()
	}

feed:
	for i := range alphas {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// summarize derives best/worst/mean statistics. results must be non-empty.
func summarize(results []TrialResult) Report {
	var (
		costs = make([]float64, len(results))
		secs  = make([]float64, len(results))
		i     int
	)
	for i = range results {
		costs[i] = results[i].Bottleneck
		secs[i] = results[i].Elapsed.Seconds()
	}

	mean, std := stat.PopMeanStdDev(costs, nil)
	best := floats.MinIdx(costs) // first index on ties

	return Report{
		Trials:      results,
		Best:        best,
		BestCost:    costs[best],
		WorstCost:   floats.Max(costs),
		MeanCost:    round1e9(mean),
		StdDevCost:  round1e9(std),
		MeanElapsed: time.Duration(stat.Mean(secs, nil) * float64(time.Second)),
	}
}
