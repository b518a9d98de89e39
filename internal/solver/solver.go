// internal/solver/solver.go
//
// Puzzle orchestrator: drives the guess loop for a single puzzle.
// Each round asks the selector for a guess, evaluates it against the hidden
// solution, and folds the feedback into the constraint set until the
// solution is found or the attempt budget runs out.
//
// A single solve is strictly sequential (each guess depends on the previous
// round's constraints) and purely in-memory. The corpus and frequency table
// are read-only and may be shared across concurrent solves; every solve owns
// its own constraint set and history exclusively.

package solver

import (
	"fmt"

	"github.com/parridge/wordlebot/internal/constraint"
	"github.com/parridge/wordlebot/internal/game"
)

// Status is the coarse state of a puzzle run.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

const (
	defaultWordLength = 5
	defaultMaxGuesses = 6
)

// Config holds the puzzle dimensions. Zero values fall back to the classic
// 5-letter, 6-guess game; variants may override both.
type Config struct {
	WordLength int
	MaxGuesses int
}

func (c Config) withDefaults() Config {
	if c.WordLength <= 0 {
		c.WordLength = defaultWordLength
	}
	if c.MaxGuesses <= 0 {
		c.MaxGuesses = defaultMaxGuesses
	}
	return c
}

// Result is the record of one completed puzzle run.
type Result struct {
	Solution game.Word    `json:"solution"`
	Status   Status       `json:"status"`
	Guesses  []game.Guess `json:"guesses"`
	Attempts int          `json:"attempts"`
}

// Run solves one puzzle: repeatedly pick a candidate, evaluate it against
// solution, and update the constraints, until the guess is all green (won)
// or cfg.MaxGuesses attempts are used (lost). Running out of guesses is a
// normal terminal state, not an error.
//
// Errors (bad solution shape, empty candidate set) are structural and
// surface immediately; nothing is retried.
func Run(solution game.Word, corpus []game.Word, freqs FrequencyTable, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	if len(solution) != cfg.WordLength {
		return Result{}, fmt.Errorf("solution %q: %w", solution, game.ErrLengthMismatch)
	}

	var (
		constraints constraint.Set
		guesses     = make([]game.Guess, 0, cfg.MaxGuesses)
	)
	for len(guesses) < cfg.MaxGuesses {
		word, err := Pick(corpus, constraints, freqs)
		if err != nil {
			return Result{Solution: solution, Status: StatusInProgress, Guesses: guesses, Attempts: len(guesses)}, err
		}
		guess, err := game.Evaluate(word, solution)
		if err != nil {
			return Result{Solution: solution, Status: StatusInProgress, Guesses: guesses, Attempts: len(guesses)}, err
		}
		guesses = append(guesses, guess)

		if guess.Correct() {
			return Result{Solution: solution, Status: StatusWon, Guesses: guesses, Attempts: len(guesses)}, nil
		}
		constraints = constraint.Update(constraints, guess, cfg.WordLength)
	}
	return Result{Solution: solution, Status: StatusLost, Guesses: guesses, Attempts: len(guesses)}, nil
}
