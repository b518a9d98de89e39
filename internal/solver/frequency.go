// internal/solver/frequency.go
//
// Static letter-frequency table used to score candidate words.
// The table is read-only after construction and safe to share across
// concurrent solves.

package solver

import "github.com/parridge/wordlebot/internal/game"

// FrequencyTable maps each letter a-z to a non-negative weight.
// Weights need not sum to 1.
type FrequencyTable [26]float64

// Score returns the sum of weights over the distinct letters of word.
// Letters are counted once regardless of repetition: repeating a letter adds
// no new positional information, so it must not inflate the score.
// e.g. "later" (5 distinct letters) outscores "eerie" (3 distinct letters).
func (t FrequencyTable) Score(word game.Word) float64 {
	var seen [26]bool
	var sum float64
	for i := 0; i < len(word); i++ {
		j := word[i] - 'a'
		if !seen[j] {
			seen[j] = true
			sum += t[j]
		}
	}
	return sum
}
