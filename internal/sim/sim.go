// internal/sim/sim.go
//
// Batch simulation: run many independent puzzle solves concurrently and
// aggregate win/guess statistics.
//
// The corpus and frequency table are read-only for the whole batch and
// shared across workers without locking; each solve owns its own state.
// Aggregation happens under a mutex so no counter is written concurrently
// unsynchronized.

package sim

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/parridge/wordlebot/internal/game"
	"github.com/parridge/wordlebot/internal/solver"
)

// Options controls one batch.
type Options struct {
	Runs    int           // number of puzzles to solve
	Config  solver.Config // puzzle dimensions
	Workers int           // concurrent solves; defaults to GOMAXPROCS

	// PickSolution chooses the hidden solution for one run. Defaults to a
	// uniformly random corpus word.
	PickSolution func() game.Word

	// OnResult, if set, is called once per completed run (from the
	// aggregating goroutine's lock, so it may touch shared state).
	OnResult func(solver.Result)
}

// Summary aggregates a finished batch.
type Summary struct {
	Runs      int           `json:"runs"`
	Wins      int           `json:"wins"`
	Losses    int           `json:"losses"`
	Histogram []int         `json:"histogram"` // index = attempts used by a win
	MeanWin   float64       `json:"meanWinGuesses"`
	Elapsed   time.Duration `json:"-"`
	ElapsedMs int64         `json:"elapsedMs"`
}

// WinRate returns wins as a fraction of runs (0 when the batch is empty).
func (s Summary) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Runs)
}

// Run executes opts.Runs independent solves and returns the aggregate.
// The first structural error (empty candidate set, bad word shape) cancels
// the remaining work and is returned; losses are not errors.
func Run(ctx context.Context, corpus []game.Word, freqs solver.FrequencyTable, opts Options) (Summary, error) {
	cfg := opts.Config
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pick := opts.PickSolution
	if pick == nil {
		pick = func() game.Word { return randomWord(corpus) }
	}

	start := time.Now()
	maxGuesses := cfg.MaxGuesses
	if maxGuesses <= 0 {
		maxGuesses = 6
	}

	var (
		mu        sync.Mutex
		summary   = Summary{Runs: opts.Runs, Histogram: make([]int, maxGuesses+1)}
		winTotals int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := solver.Run(pick(), corpus, freqs, cfg)
			if err != nil {
				return err
			}
			mu.Lock()
			if res.Status == solver.StatusWon {
				summary.Wins++
				summary.Histogram[res.Attempts]++
				winTotals += res.Attempts
			} else {
				summary.Losses++
			}
			if opts.OnResult != nil {
				opts.OnResult(res)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	if summary.Wins > 0 {
		summary.MeanWin = float64(winTotals) / float64(summary.Wins)
	}
	summary.Elapsed = time.Since(start)
	summary.ElapsedMs = summary.Elapsed.Milliseconds()
	return summary, nil
}
