// Package scoring defines the scoring-model abstraction consumed by a
// pairwise alignment engine: immutable, validated value objects that tell
// the engine how to score substitutions and gaps (affine-gap scoring) or
// how to cost substitutions and indels (edit-distance scoring).
//
// Models are built through a family of constructors that all converge on
// the same validated object: from a pre-built substitution table, from raw
// matrix rows, or from pure match/mismatch scalars. Validation is eager; a
// constructor either returns a fully valid model or an error, never a
// partially built one. Constructed models are read-only and safe to share
// across concurrent alignment computations.
package scoring

import (
	"reflect"

	"github.com/seqscore/seqscore/pkg/submat"
)

// Number constrains the numeric element type of a model.
type Number = submat.Number

// Scorer is the capability an affine-gap alignment engine reads from a
// score model.
type Scorer[T Number] interface {
	// SubstitutionScore returns the score for aligning a against b.
	SubstitutionScore(a, b submat.Symbol) T
	// GapOpen returns the (non-positive) score for opening a gap.
	GapOpen() T
	// GapExtend returns the (non-positive) score for extending a gap.
	GapExtend() T
}

// Coster is the capability an edit-distance engine reads from a cost model.
type Coster[T Number] interface {
	// SubstitutionCost returns the cost for substituting a with b.
	SubstitutionCost(a, b submat.Symbol) T
	// InsertionCost returns the (non-negative) cost of one insertion.
	InsertionCost() T
	// DeletionCost returns the (non-negative) cost of one deletion.
	DeletionCost() T
}

// ScoreModel holds a substitution table plus affine-gap parameters.
// Invariant: gapOpen <= 0 and gapExtend <= 0, established at construction.
type ScoreModel[T Number] struct {
	table     submat.SubstitutionTable[T]
	gapOpen   T
	gapExtend T
}

// SubstitutionScore returns the table score for the ordered pair (a, b).
func (m *ScoreModel[T]) SubstitutionScore(a, b submat.Symbol) T { return m.table.Score(a, b) }

// GapOpen returns the score for opening a gap.
func (m *ScoreModel[T]) GapOpen() T { return m.gapOpen }

// GapExtend returns the score for extending a gap by one position.
func (m *ScoreModel[T]) GapExtend() T { return m.gapExtend }

// Table returns the model's substitution table.
func (m *ScoreModel[T]) Table() submat.SubstitutionTable[T] { return m.table }

// Equal reports whether two score models hold the same table and gap
// parameters. Models built twice from identical arguments compare equal.
func (m *ScoreModel[T]) Equal(o *ScoreModel[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.gapOpen == o.gapOpen && m.gapExtend == o.gapExtend && tablesEqual(m.table, o.table)
}

// CostModel holds a substitution table plus indel costs.
// Invariant: insertion >= 0 and deletion >= 0, established at construction.
type CostModel[T Number] struct {
	table     submat.SubstitutionTable[T]
	insertion T
	deletion  T
}

// SubstitutionCost returns the table cost for the ordered pair (a, b).
func (m *CostModel[T]) SubstitutionCost(a, b submat.Symbol) T { return m.table.Score(a, b) }

// InsertionCost returns the cost of inserting one symbol.
func (m *CostModel[T]) InsertionCost() T { return m.insertion }

// DeletionCost returns the cost of deleting one symbol.
func (m *CostModel[T]) DeletionCost() T { return m.deletion }

// Table returns the model's substitution table.
func (m *CostModel[T]) Table() submat.SubstitutionTable[T] { return m.table }

// Equal reports whether two cost models hold the same table and indel costs.
func (m *CostModel[T]) Equal(o *CostModel[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.insertion == o.insertion && m.deletion == o.deletion && tablesEqual(m.table, o.table)
}

func tablesEqual[T Number](a, b submat.SubstitutionTable[T]) bool {
	switch at := a.(type) {
	case submat.Dichotomous[T]:
		bt, ok := b.(submat.Dichotomous[T])
		return ok && at.Equal(bt)
	case *submat.Matrix[T]:
		bt, ok := b.(*submat.Matrix[T])
		return ok && at.Equal(bt)
	default:
		return reflect.DeepEqual(a, b)
	}
}
