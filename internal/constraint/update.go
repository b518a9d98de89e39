// internal/constraint/update.go
//
// Folds one evaluated guess into an existing constraint set.
// The guess is processed strictly left to right, so a later green for a
// letter correctly erases constraints added earlier in the same pass for
// that letter (e.g. yellow-then-green for the same letter in one guess
// resolves to just the green's exact-position fact).

package constraint

import "github.com/parridge/wordlebot/internal/game"

// Update returns a new Set reflecting everything learned from guess.
// The input set is never mutated.
//
// Per colored letter at position i:
//   - green: an exact-position fact supersedes prior partial knowledge, so
//     every existing constraint on the letter is dropped and AtOneOf{i}
//     added.
//   - yellow: the letter is in the word but not here; AtOneOf{all but i}
//     and NotAtAny{i} are added, existing constraints kept.
//   - grey, letter repeated within this guess: only NotAtAny{i}. Another
//     occurrence in the same guess may be green/yellow, so a global ban
//     would be wrong.
//   - grey, letter unique in this guess: the letter is not in the word at
//     all; existing constraints on it are dropped and NotAtAny{0..L-1}
//     added.
func Update(s Set, guess game.Guess, wordLen int) Set {
	out := make(Set, len(s), len(s)+2*len(guess))
	copy(out, s)

	var letterCounts [26]int
	for _, cl := range guess {
		letterCounts[cl.Letter-'a']++
	}

	for i, cl := range guess {
		switch cl.Color {
		case game.Green:
			out = dropLetter(out, cl.Letter)
			out = append(out, Constraint{Letter: cl.Letter, Kind: AtOneOf, Positions: []int{i}})

		case game.Yellow:
			out = append(out,
				Constraint{Letter: cl.Letter, Kind: AtOneOf, Positions: allBut(wordLen, i)},
				Constraint{Letter: cl.Letter, Kind: NotAtAny, Positions: []int{i}},
			)

		case game.Grey:
			if letterCounts[cl.Letter-'a'] > 1 {
				out = append(out, Constraint{Letter: cl.Letter, Kind: NotAtAny, Positions: []int{i}})
			} else {
				out = dropLetter(out, cl.Letter)
				out = append(out, Constraint{Letter: cl.Letter, Kind: NotAtAny, Positions: allBut(wordLen, -1)})
			}

		default:
			panic("constraint: unknown color " + string(cl.Color))
		}
	}
	return out
}

// dropLetter removes every constraint on letter, in place on s's backing
// array (s is already the working copy).
func dropLetter(s Set, letter byte) Set {
	kept := s[:0]
	for _, c := range s {
		if c.Letter != letter {
			kept = append(kept, c)
		}
	}
	return kept
}

// allBut returns positions 0..n-1 excluding skip (pass -1 to keep all).
func allBut(n, skip int) []int {
	out := make([]int, 0, n)
	for p := 0; p < n; p++ {
		if p != skip {
			out = append(out, p)
		}
	}
	return out
}
