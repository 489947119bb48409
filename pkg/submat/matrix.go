package submat

import (
	"errors"
	"fmt"
)

// ErrDimension is returned when raw matrix rows do not match the alphabet.
var ErrDimension = errors.New("matrix dimensions do not match alphabet")

// ErrDuplicateSymbol is returned when an alphabet repeats a symbol.
var ErrDuplicateSymbol = errors.New("duplicate symbol in alphabet")

// Matrix is a dense substitution table indexed by an alphabet. Rows and
// columns follow alphabet order: scores[i][j] is the score for aligning
// alphabet[i] against alphabet[j].
type Matrix[T Number] struct {
	alphabet Alphabet
	index    map[Symbol]int
	scores   [][]T
}

// NewMatrix wraps raw score rows into a substitution table over the given
// alphabet. The rows are copied; the caller keeps ownership of its slice.
func NewMatrix[T Number](alphabet Alphabet, rows [][]T) (*Matrix[T], error) {
	n := alphabet.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrDimension)
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d rows for %d symbols", ErrDimension, len(rows), n)
	}

	index := make(map[Symbol]int, n)
	for i, s := range alphabet {
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, byte(s))
		}
		index[s] = i
	}

	scores := make([][]T, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimension, i, len(row), n)
		}
		scores[i] = make([]T, n)
		copy(scores[i], row)
	}

	return &Matrix[T]{alphabet: alphabet, index: index, scores: scores}, nil
}

// Score returns the table entry for the ordered pair (a, b). Both symbols
// must belong to the table's alphabet; lookups outside it panic, since the
// alignment engine contract has no error path per position.
func (m *Matrix[T]) Score(a, b Symbol) T {
	i, ok := m.index[a]
	if !ok {
		panic(fmt.Sprintf("submat: symbol %q not in alphabet %s", byte(a), m.alphabet))
	}
	j, ok := m.index[b]
	if !ok {
		panic(fmt.Sprintf("submat: symbol %q not in alphabet %s", byte(b), m.alphabet))
	}
	return m.scores[i][j]
}

// Alphabet returns the alphabet the matrix is indexed by.
func (m *Matrix[T]) Alphabet() Alphabet { return m.alphabet }

// Rows returns a copy of the score rows in alphabet order.
func (m *Matrix[T]) Rows() [][]T {
	out := make([][]T, len(m.scores))
	for i, row := range m.scores {
		out[i] = make([]T, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports whether two matrices cover the same alphabet with the same
// entries.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.alphabet) != len(o.alphabet) {
		return false
	}
	for i, s := range m.alphabet {
		if o.alphabet[i] != s {
			return false
		}
	}
	for i, row := range m.scores {
		for j, v := range row {
			if o.scores[i][j] != v {
				return false
			}
		}
	}
	return true
}
