// Package submat provides substitution tables for pairwise sequence
// alignment: dichotomous match/mismatch tables and dense alphabet-indexed
// matrices, generic over the numeric score type.
package submat

import "golang.org/x/exp/constraints"

// Number constrains the score/cost element type of a substitution table.
// Unsigned types are excluded: gap scores are non-positive, and penalty
// spellings negate their magnitude.
type Number interface {
	constraints.Signed | constraints.Float
}

// Symbol is a single sequence character (nucleotide, residue, ...).
type Symbol byte

// Alphabet is the ordered set of symbols a matrix table is indexed by.
type Alphabet []Symbol

// NewAlphabet builds an alphabet from the given symbols, in order.
func NewAlphabet(symbols ...Symbol) Alphabet {
	return Alphabet(symbols)
}

// ParseAlphabet builds an alphabet from a string, one symbol per byte.
func ParseAlphabet(s string) Alphabet {
	a := make(Alphabet, len(s))
	for i := 0; i < len(s); i++ {
		a[i] = Symbol(s[i])
	}
	return a
}

// DNA is the standard nucleotide alphabet.
var DNA = NewAlphabet('A', 'C', 'G', 'T')

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int { return len(a) }

// Index returns the position of s in the alphabet, or false if absent.
func (a Alphabet) Index(s Symbol) (int, bool) {
	for i, sym := range a {
		if sym == s {
			return i, true
		}
	}
	return 0, false
}

func (a Alphabet) String() string {
	b := make([]byte, len(a))
	for i, s := range a {
		b[i] = byte(s)
	}
	return string(b)
}
