package words

import (
	"testing"

	"github.com/parridge/wordlebot/internal/game"
)

func initWords(t *testing.T) {
	t.Helper()
	if err := Init(5); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

func TestEmbeddedCorpus(t *testing.T) {
	initWords(t)

	if Stats() == 0 {
		t.Fatal("embedded corpus is empty")
	}
	for _, w := range Corpus() {
		if len(w) != 5 {
			t.Errorf("corpus word %q is not 5 letters", w)
		}
		for i := 0; i < len(w); i++ {
			if w[i] < 'a' || w[i] > 'z' {
				t.Errorf("corpus word %q has invalid letter %q", w, w[i])
			}
		}
	}
}

func TestFrequenciesCoverCorpus(t *testing.T) {
	initWords(t)

	freqs := Frequencies()
	var total float64
	for _, w := range Corpus() {
		for i := 0; i < len(w); i++ {
			if freqs[w[i]-'a'] <= 0 {
				t.Fatalf("letter %q occurs in corpus but has no frequency weight", w[i])
			}
		}
	}
	for _, f := range freqs {
		if f < 0 {
			t.Fatal("negative frequency weight")
		}
		total += f
	}
	if total < 0.999 || total > 1.001 {
		t.Errorf("frequencies sum to %v, want ~1", total)
	}
}

func TestRandomSolutionIsCorpusMember(t *testing.T) {
	initWords(t)

	for i := 0; i < 10; i++ {
		w := RandomSolution()
		if !Contains(w) {
			t.Fatalf("RandomSolution returned %q, not in corpus", w)
		}
	}
}

func TestContains(t *testing.T) {
	initWords(t)

	if !Contains(game.Word("later")) {
		t.Error("later should be in the default corpus")
	}
	if Contains(game.Word("zzzzz")) {
		t.Error("zzzzz should not be in the default corpus")
	}
}
