// internal/words/words.go
//
// Word corpus management for the solver.
//
// Responsibilities:
//   - Load the corpus from an environment-provided file or fall back to the
//     embedded default list.
//   - Compute the static letter-frequency table from the loaded corpus.
//   - Supply utilities: Corpus, Frequencies, RandomSolution, Contains, Stats.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load one word per line from that file.
//   2. Otherwise use the embedded default list (default_words.txt).
//
// Constraints:
//   - Words are normalized to lowercase; entries that are not exactly the
//     configured length or contain non a-z characters are skipped.
//   - Initialization runs once (sync.Once); the corpus and frequency table
//     are read-only afterwards and safe to share across concurrent solves.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/parridge/wordlebot/internal/game"
	"github.com/parridge/wordlebot/internal/solver"
)

//go:embed default_words.txt
var embeddedWords string

var (
	initOnce   sync.Once
	corpus     []game.Word
	corpusSet  map[game.Word]struct{}
	freqs      solver.FrequencyTable
	initialErr error
)

// Init loads the corpus and computes letter frequencies exactly once.
// length is the configured word length; entries of any other length are
// dropped. Returns an error if the corpus ends up empty.
func Init(length int) error {
	initOnce.Do(func() {
		var list []game.Word
		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			list, err = readWordFile(path, length)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			list = normalizeLines(embeddedWords, length)
		}
		if len(list) == 0 {
			initialErr = errors.New("words: corpus is empty")
			return
		}

		corpus = list
		corpusSet = make(map[game.Word]struct{}, len(list))
		for _, w := range list {
			corpusSet[w] = struct{}{}
		}
		freqs = computeFrequencies(list)
	})
	return initialErr
}

// readWordFile loads one word per line from a file, keeping only valid
// entries of the configured length.
func readWordFile(path string, length int) ([]game.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []game.Word
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, err := game.ParseWord(sc.Text(), length); err == nil {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into valid words.
func normalizeLines(s string, length int) []game.Word {
	var out []game.Word
	for _, line := range strings.Split(s, "\n") {
		if w, err := game.ParseWord(line, length); err == nil {
			out = append(out, w)
		}
	}
	return out
}

// computeFrequencies returns per-letter occurrence frequencies over the
// whole corpus, the same table the solver's scoring heuristic consumes.
func computeFrequencies(list []game.Word) solver.FrequencyTable {
	var counts [26]int
	total := 0
	for _, w := range list {
		for i := 0; i < len(w); i++ {
			counts[w[i]-'a']++
			total++
		}
	}
	var t solver.FrequencyTable
	if total == 0 {
		return t
	}
	for i, c := range counts {
		t[i] = float64(c) / float64(total)
	}
	return t
}

// Corpus returns the loaded word list. Callers must not mutate it.
func Corpus() []game.Word { return corpus }

// Frequencies returns the letter-frequency table computed from the corpus.
func Frequencies() solver.FrequencyTable { return freqs }

// Contains reports whether w is in the corpus.
func Contains(w game.Word) bool {
	_, ok := corpusSet[w]
	return ok
}

// RandomSolution returns a cryptographically random word from the corpus.
func RandomSolution() game.Word {
	if len(corpus) == 0 {
		return ""
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(corpus))))
	return corpus[nBig.Int64()]
}

// Stats returns the number of loaded words.
func Stats() int { return len(corpus) }
