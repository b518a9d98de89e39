package sim

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/parridge/wordlebot/internal/game"
	"github.com/parridge/wordlebot/internal/solver"
)

func testCorpus() []game.Word {
	return []game.Word{
		"later", "cater", "hater", "water", "eater",
		"crane", "slate", "stale", "least", "steal",
		"stare", "irate", "raise", "arise", "stone",
	}
}

func uniformFreqs() solver.FrequencyTable {
	var t solver.FrequencyTable
	for i := range t {
		t[i] = 1
	}
	return t
}

func TestRunAggregates(t *testing.T) {
	corpus := testCorpus()
	var calls int64
	summary, err := Run(context.Background(), corpus, uniformFreqs(), Options{
		Runs:     50,
		Config:   solver.Config{WordLength: 5, MaxGuesses: 6},
		Workers:  4,
		OnResult: func(solver.Result) { atomic.AddInt64(&calls, 1) },
	})
	if err != nil {
		t.Fatal(err)
	}

	if summary.Runs != 50 {
		t.Errorf("Runs = %d, want 50", summary.Runs)
	}
	if summary.Wins+summary.Losses != summary.Runs {
		t.Errorf("wins %d + losses %d != runs %d", summary.Wins, summary.Losses, summary.Runs)
	}
	if calls != int64(summary.Runs) {
		t.Errorf("OnResult called %d times, want %d", calls, summary.Runs)
	}

	histTotal := 0
	for attempts, count := range summary.Histogram {
		if count > 0 && (attempts < 1 || attempts > 6) {
			t.Errorf("win recorded at impossible attempt count %d", attempts)
		}
		histTotal += count
	}
	if histTotal != summary.Wins {
		t.Errorf("histogram total %d != wins %d", histTotal, summary.Wins)
	}
	if summary.Wins > 0 && (summary.MeanWin < 1 || summary.MeanWin > 6) {
		t.Errorf("MeanWin = %v, out of range", summary.MeanWin)
	}
}

func TestRunFixedSolutionAlwaysWins(t *testing.T) {
	// A tiny corpus is solvable within the budget for every solution, so a
	// batch pinned to one solution must be all wins.
	corpus := testCorpus()
	summary, err := Run(context.Background(), corpus, uniformFreqs(), Options{
		Runs:         20,
		Config:       solver.Config{WordLength: 5, MaxGuesses: 6},
		PickSolution: func() game.Word { return "eater" },
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Wins != 20 {
		t.Errorf("Wins = %d, want 20 (losses: %d)", summary.Wins, summary.Losses)
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, testCorpus(), uniformFreqs(), Options{Runs: 10})
	if err == nil {
		t.Fatal("expected context error from canceled batch")
	}
}
