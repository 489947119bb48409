package submat

// SubstitutionTable maps an ordered pair of symbols to a score (or cost) of
// type T. Tables are read-only after construction and safe for concurrent
// lookups.
type SubstitutionTable[T Number] interface {
	// Score returns the substitution score for aligning a against b.
	Score(a, b Symbol) T
}

// Dichotomous is a substitution table fully described by two scalars: every
// equal pair scores Match, every unequal pair scores Mismatch.
type Dichotomous[T Number] struct {
	match    T
	mismatch T
}

// NewDichotomous builds a two-valued substitution table.
func NewDichotomous[T Number](match, mismatch T) Dichotomous[T] {
	return Dichotomous[T]{match: match, mismatch: mismatch}
}

// Score returns match for equal symbols and mismatch otherwise.
func (d Dichotomous[T]) Score(a, b Symbol) T {
	if a == b {
		return d.match
	}
	return d.mismatch
}

// Match returns the score for equal symbols.
func (d Dichotomous[T]) Match() T { return d.match }

// Mismatch returns the score for unequal symbols.
func (d Dichotomous[T]) Mismatch() T { return d.mismatch }

// Equal reports whether two dichotomous tables hold the same scalars.
func (d Dichotomous[T]) Equal(o Dichotomous[T]) bool {
	return d.match == o.match && d.mismatch == o.mismatch
}
