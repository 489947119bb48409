package scoring

import "fmt"

// Ptr returns a pointer to v, for filling optional config fields inline.
func Ptr[T any](v T) *T { return &v }

// GapConfig carries the accepted spellings of the affine-gap parameters.
// Each parameter may be given directly (GapOpen, GapExtend: the stored,
// non-positive score) or as a penalty magnitude (GapOpenPenalty,
// GapExtendPenalty: conventionally non-negative, stored negated). When both
// spellings of one parameter are set, the direct field wins.
type GapConfig[T Number] struct {
	GapOpen          *T
	GapOpenPenalty   *T
	GapExtend        *T
	GapExtendPenalty *T
}

// Resolve picks one value per gap parameter in fixed priority order.
// A parameter with neither spelling set fails with ErrMissingArgument.
func (c GapConfig[T]) Resolve() (gapOpen, gapExtend T, err error) {
	switch {
	case c.GapOpen != nil:
		gapOpen = *c.GapOpen
	case c.GapOpenPenalty != nil:
		gapOpen = -*c.GapOpenPenalty
	default:
		return gapOpen, gapExtend, fmt.Errorf("%w: gap_open (or gap_open_penalty)", ErrMissingArgument)
	}

	switch {
	case c.GapExtend != nil:
		gapExtend = *c.GapExtend
	case c.GapExtendPenalty != nil:
		gapExtend = -*c.GapExtendPenalty
	default:
		return gapOpen, gapExtend, fmt.Errorf("%w: gap_extend (or gap_extend_penalty)", ErrMissingArgument)
	}

	return gapOpen, gapExtend, nil
}

// IndelConfig carries the indel costs of a cost model. Costs are already
// expressed as non-negative magnitudes, so there is no penalty spelling.
type IndelConfig[T Number] struct {
	Insertion *T
	Deletion  *T
}

// Resolve returns the indel costs, failing with ErrMissingArgument when
// either is unset.
func (c IndelConfig[T]) Resolve() (insertion, deletion T, err error) {
	if c.Insertion == nil {
		return insertion, deletion, fmt.Errorf("%w: insertion", ErrMissingArgument)
	}
	if c.Deletion == nil {
		return insertion, deletion, fmt.Errorf("%w: deletion", ErrMissingArgument)
	}
	return *c.Insertion, *c.Deletion, nil
}

// ScoreScheme is the scalar shorthand for a score model: match/mismatch
// scalars for a dichotomous table plus the gap parameters.
type ScoreScheme[T Number] struct {
	Match    *T
	Mismatch *T
	GapConfig[T]
}

// CostScheme is the scalar shorthand for a cost model.
type CostScheme[T Number] struct {
	Match    *T
	Mismatch *T
	IndelConfig[T]
}
