// internal/solver/select.go
//
// Candidate selection: filter the corpus down to words consistent with the
// accumulated constraints, then pick the highest-scoring survivor.

package solver

import (
	"errors"

	"github.com/parridge/wordlebot/internal/constraint"
	"github.com/parridge/wordlebot/internal/game"
)

// ErrNoCandidates means no corpus word satisfies the constraint set. In
// normal operation this never happens while the true solution remains in the
// corpus; it signals an inconsistent constraint derivation or a solution
// outside the corpus, and is fatal for the puzzle run.
var ErrNoCandidates = errors.New("no candidate words satisfy the constraints")

// Pick returns the corpus word with the highest distinct-letter frequency
// score among those satisfying every constraint. Ties are broken by
// returning the lexicographically smallest word, so selection is
// deterministic.
func Pick(corpus []game.Word, constraints constraint.Set, freqs FrequencyTable) (game.Word, error) {
	var (
		best      game.Word
		bestScore float64
		found     bool
	)
	for _, w := range corpus {
		if !constraints.Satisfies(w) {
			continue
		}
		score := freqs.Score(w)
		if !found || score > bestScore || (score == bestScore && w < best) {
			best, bestScore, found = w, score, true
		}
	}
	if !found {
		return "", ErrNoCandidates
	}
	return best, nil
}
