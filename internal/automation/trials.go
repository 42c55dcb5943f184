package automation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
)

// TrialsConfig defines a batch of randomized runs.
type TrialsConfig struct {
	Algorithms []string
	NumTrials  int
	MaxSize    int
	MaxValue   int
	Seed       int64
	// Workers runs trials on that many goroutines; values below 2 run them
	// sequentially.
	Workers int
}

// TrialResult is the outcome of one randomized run.
type TrialResult struct {
	TrialID   int
	Algorithm string
	Input     []int
	Steps     int
	Entries   int
	Err       error
}

func (r TrialResult) Passed() bool { return r.Err == nil }

// RunTrials runs every algorithm over NumTrials random inputs. Inputs are
// drawn up front so a seed reproduces the batch regardless of Workers. Check
// failures are recorded per trial; only context cancellation stops the batch.
func RunTrials(ctx context.Context, cfg *TrialsConfig, opts Options) ([]TrialResult, error) {
	algorithms := cfg.Algorithms
	if len(algorithms) == 0 {
		algorithms = algo.Names()
	}
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = 10
	}
	maxValue := cfg.MaxValue
	if maxValue <= 0 {
		maxValue = 2 * maxSize
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	jobs := make([]TrialResult, 0, cfg.NumTrials*len(algorithms))
	for trial := 0; trial < cfg.NumTrials; trial++ {
		input := make([]int, rng.Intn(maxSize+1))
		for i := range input {
			input[i] = 1 + rng.Intn(maxValue)
		}
		for _, name := range algorithms {
			jobs = append(jobs, TrialResult{TrialID: trial, Algorithm: name, Input: input})
		}
	}

	done := make([]bool, len(jobs))
	parallelFor(len(jobs), cfg.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			tr := &jobs[i]
			res, err := Execute(ctx, tr.Algorithm, tr.Input, opts)
			if res != nil {
				tr.Steps = res.Steps
				tr.Entries = res.Entries
			}
			tr.Err = err
			if err != nil {
				opts.log().Warn("trial failed", "trial", tr.TrialID, "algorithm", tr.Algorithm, "input", tr.Input, "err", err)
			}
			done[i] = true
		}
	})

	results := make([]TrialResult, 0, len(jobs))
	for i, tr := range jobs {
		if done[i] {
			results = append(results, tr)
		}
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	passed, failed := TrialStats(results)
	opts.log().Info("trials finished", "runs", len(results), "passed", passed, "failed", failed)
	return results, nil
}

// parallelFor splits [0, n) into one contiguous chunk per worker.
func parallelFor(n, workers int, fn func(start, end int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// TrialStats counts passed and failed trials.
func TrialStats(results []TrialResult) (passed int, failed int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return
}
