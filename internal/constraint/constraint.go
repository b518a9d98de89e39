// internal/constraint/constraint.go
//
// Constraint model for the solver: one Constraint records a single fact
// learned about the solution (a letter is at one of some positions, or is at
// none of them). A Set is the accumulated knowledge from all guesses so far.
//
// Sets are value types and are never mutated in place: Update returns a new
// Set, so each round's knowledge can be snapshotted and compared.

package constraint

import "github.com/parridge/wordlebot/internal/game"

// Kind discriminates the two forms of constraint.
type Kind uint8

const (
	// AtOneOf means the letter occupies one of the listed positions.
	AtOneOf Kind = iota
	// NotAtAny means the letter occupies none of the listed positions.
	NotAtAny
)

// Constraint is one fact about the solution: a letter plus a set of position
// indices, interpreted by Kind.
type Constraint struct {
	Letter    byte
	Kind      Kind
	Positions []int
}

// Satisfied reports whether word is consistent with this constraint.
func (c Constraint) Satisfied(word game.Word) bool {
	atSome := false
	for _, p := range c.Positions {
		if word[p] == c.Letter {
			atSome = true
			break
		}
	}
	switch c.Kind {
	case AtOneOf:
		return atSome
	case NotAtAny:
		return !atSome
	default:
		panic("constraint: unknown kind")
	}
}

// Set is an unordered collection of constraints. A letter may carry several
// constraints at once (e.g. an AtOneOf and a NotAtAny from the same yellow);
// that is expected and must not be deduplicated.
type Set []Constraint

// Satisfies reports whether word meets every constraint in the set.
func (s Set) Satisfies(word game.Word) bool {
	for _, c := range s {
		if !c.Satisfied(word) {
			return false
		}
	}
	return true
}
