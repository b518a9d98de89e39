// internal/sim/random.go
//
// Solution sampling for batch simulations.

package sim

import (
	"crypto/rand"
	"math/big"

	"github.com/parridge/wordlebot/internal/game"
)

// randomWord picks a uniformly random corpus word.
func randomWord(corpus []game.Word) game.Word {
	if len(corpus) == 0 {
		return ""
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(corpus))))
	return corpus[nBig.Int64()]
}
