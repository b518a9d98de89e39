// internal/game/types.go
//
// Core type definitions for the puzzle engine.
// Defines:
//   - Word: a validated, fixed-length lowercase word.
//   - Color: per-letter result of an evaluated guess (green/yellow/grey).
//   - ColoredLetter: one letter of a guess with its color.
//   - Guess: a fully evaluated guess (one ColoredLetter per position).

package game

import "errors"

// Color represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "green":  letter is correct and in the correct position.
//   - "yellow": letter exists in the solution but in a different position.
//   - "grey":   letter is not in the solution at this position (a duplicate
//     occurrence beyond the solution's count is also grey).
type Color string

const (
	Green  Color = "green"
	Yellow Color = "yellow"
	Grey   Color = "grey"
)

// Errors returned by Word construction and evaluation.
// They indicate structurally bad input and are never retried internally.
var (
	ErrLengthMismatch   = errors.New("word length mismatch")
	ErrInvalidCharacter = errors.New("word contains non a-z character")
)

// Word is an immutable lowercase word of a fixed length.
// Construct one via ParseWord so the invariants hold.
type Word string

// ColoredLetter is one letter of an evaluated guess.
type ColoredLetter struct {
	Letter byte  `json:"letter"`
	Color  Color `json:"color"`
}

// Guess is the evaluated result of submitting one word against the hidden
// solution: exactly one ColoredLetter per position. Immutable once created.
type Guess []ColoredLetter

// Word reconstructs the guessed word from the colored letters.
func (g Guess) Word() Word {
	b := make([]byte, len(g))
	for i, cl := range g {
		b[i] = cl.Letter
	}
	return Word(b)
}

// Correct reports whether every letter of the guess is green.
func (g Guess) Correct() bool {
	for _, cl := range g {
		if cl.Color != Green {
			return false
		}
	}
	return true
}
