package scoring

import (
	"fmt"

	"github.com/seqscore/seqscore/pkg/submat"
)

// NewScoreModel builds a score model from a substitution table and explicit
// gap parameters. Both parameters must be <= 0: an affine gap of length k
// scores gapOpen + gapExtend*k, and a positive value would reward gaps.
func NewScoreModel[T Number](table submat.SubstitutionTable[T], gapOpen, gapExtend T) (*ScoreModel[T], error) {
	if table == nil {
		return nil, fmt.Errorf("%w: substitution table is required", ErrConfiguration)
	}
	if gapOpen > 0 {
		return nil, fmt.Errorf("%w: gap_open must be <= 0, got %v", ErrConfiguration, gapOpen)
	}
	if gapExtend > 0 {
		return nil, fmt.Errorf("%w: gap_extend must be <= 0, got %v", ErrConfiguration, gapExtend)
	}
	return &ScoreModel[T]{table: table, gapOpen: gapOpen, gapExtend: gapExtend}, nil
}

// NewScoreModelFromConfig builds a score model from a substitution table
// and gap parameters given under either accepted spelling.
func NewScoreModelFromConfig[T Number](table submat.SubstitutionTable[T], cfg GapConfig[T]) (*ScoreModel[T], error) {
	gapOpen, gapExtend, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	return NewScoreModel(table, gapOpen, gapExtend)
}

// NewScoreModelFromMatrix wraps raw score rows over an alphabet into a
// substitution matrix, then builds a score model from it.
func NewScoreModelFromMatrix[T Number](alphabet submat.Alphabet, rows [][]T, gapOpen, gapExtend T) (*ScoreModel[T], error) {
	m, err := submat.NewMatrix(alphabet, rows)
	if err != nil {
		return nil, err
	}
	return NewScoreModel[T](m, gapOpen, gapExtend)
}

// NewScoreModelFromMatrixConfig is NewScoreModelFromMatrix with the gap
// parameters given under either accepted spelling.
func NewScoreModelFromMatrixConfig[T Number](alphabet submat.Alphabet, rows [][]T, cfg GapConfig[T]) (*ScoreModel[T], error) {
	m, err := submat.NewMatrix(alphabet, rows)
	if err != nil {
		return nil, err
	}
	return NewScoreModelFromConfig[T](m, cfg)
}

// NewScoreModelFromScalars builds a score model from pure scalars: match
// and mismatch describe a dichotomous substitution table, and the gap
// parameters resolve as in NewScoreModelFromConfig. Match and Mismatch are
// required.
func NewScoreModelFromScalars[T Number](s ScoreScheme[T]) (*ScoreModel[T], error) {
	if s.Match == nil {
		return nil, fmt.Errorf("%w: match", ErrMissingArgument)
	}
	if s.Mismatch == nil {
		return nil, fmt.Errorf("%w: mismatch", ErrMissingArgument)
	}
	gapOpen, gapExtend, err := s.GapConfig.Resolve()
	if err != nil {
		return nil, err
	}
	return NewScoreModel[T](submat.NewDichotomous(*s.Match, *s.Mismatch), gapOpen, gapExtend)
}
