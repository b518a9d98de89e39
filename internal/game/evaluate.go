// internal/game/evaluate.go
//
// Guess evaluation for a single puzzle round.
// Responsibilities:
//   - Validate and normalize words (length, alphabetic a-z, lowercase).
//   - Score a guess against the solution with the classic two-pass
//     algorithm, handling repeated letters correctly.
//
// Notes:
//   - Evaluation is a pure function: the same (guess, solution) pair always
//     produces the same Guess.
//   - The tri-state used between the two passes is private to this file;
//     every position is finalized to green/yellow/grey before returning.

package game

import (
	"fmt"
	"strings"
)

// ParseWord validates and normalizes s into a Word of the given length.
// Returns ErrLengthMismatch or ErrInvalidCharacter (wrapped with detail) on
// bad input.
func ParseWord(s string, length int) (Word, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != length {
		return "", fmt.Errorf("%q is not %d letters: %w", s, length, ErrLengthMismatch)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return "", fmt.Errorf("%q: %w", s, ErrInvalidCharacter)
		}
	}
	return Word(s), nil
}

// mark is the private intermediate state between the two evaluation passes.
type mark uint8

const (
	markUnresolved mark = iota
	markGreen
	markGrey
)

// Evaluate scores guess against solution and returns the colored result.
// Requires len(guess) == len(solution); returns ErrLengthMismatch otherwise.
//
// Pass 1:
//   - Exact position matches become green.
//   - Letters absent from the solution entirely become grey.
//   - Everything else stays unresolved.
//
// Pass 2 (ascending position order, which matters for repeated letters):
//   - An unresolved letter becomes yellow only while the number of green or
//     yellow occurrences of that letter so far is below its count in the
//     solution; further occurrences become grey.
//
// So at most count-in-solution occurrences of a repeated letter are marked
// green/yellow, greens first, then earliest-position yellows.
func Evaluate(guess, solution Word) (Guess, error) {
	if len(guess) != len(solution) {
		return nil, fmt.Errorf("guess %q vs solution %q: %w", guess, solution, ErrLengthMismatch)
	}
	n := len(guess)

	// Letter counts for the solution, and recognized (green/yellow) counts
	// accumulated across both passes.
	var inSolution, recognized [26]int
	for i := 0; i < n; i++ {
		inSolution[idx(solution[i])]++
	}

	marks := make([]mark, n)
	for i := 0; i < n; i++ {
		switch {
		case guess[i] == solution[i]:
			marks[i] = markGreen
			recognized[idx(guess[i])]++
		case inSolution[idx(guess[i])] == 0:
			marks[i] = markGrey
		default:
			marks[i] = markUnresolved
		}
	}

	out := make(Guess, n)
	for i := 0; i < n; i++ {
		c := guess[i]
		switch marks[i] {
		case markGreen:
			out[i] = ColoredLetter{Letter: c, Color: Green}
		case markGrey:
			out[i] = ColoredLetter{Letter: c, Color: Grey}
		default:
			if recognized[idx(c)] < inSolution[idx(c)] {
				recognized[idx(c)]++
				out[i] = ColoredLetter{Letter: c, Color: Yellow}
			} else {
				out[i] = ColoredLetter{Letter: c, Color: Grey}
			}
		}
	}
	return out, nil
}

// idx maps a lowercase ASCII letter to 0..25.
// Inputs are validated to a-z by ParseWord.
func idx(b byte) int { return int(b - 'a') }
