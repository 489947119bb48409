package scoring

import (
	"fmt"

	"github.com/seqscore/seqscore/pkg/submat"
)

// NewCostModel builds a cost model from a substitution table and explicit
// indel costs. Both costs must be >= 0: costs model distances, and a
// negative cost would make minimization unbounded.
func NewCostModel[T Number](table submat.SubstitutionTable[T], insertion, deletion T) (*CostModel[T], error) {
	if table == nil {
		return nil, fmt.Errorf("%w: substitution table is required", ErrConfiguration)
	}
	if insertion < 0 {
		return nil, fmt.Errorf("%w: insertion must be >= 0, got %v", ErrConfiguration, insertion)
	}
	if deletion < 0 {
		return nil, fmt.Errorf("%w: deletion must be >= 0, got %v", ErrConfiguration, deletion)
	}
	return &CostModel[T]{table: table, insertion: insertion, deletion: deletion}, nil
}

// NewCostModelFromConfig builds a cost model from a substitution table and
// an IndelConfig.
func NewCostModelFromConfig[T Number](table submat.SubstitutionTable[T], cfg IndelConfig[T]) (*CostModel[T], error) {
	insertion, deletion, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	return NewCostModel(table, insertion, deletion)
}

// NewCostModelFromMatrix wraps raw cost rows over an alphabet into a
// substitution matrix, then builds a cost model from it.
func NewCostModelFromMatrix[T Number](alphabet submat.Alphabet, rows [][]T, insertion, deletion T) (*CostModel[T], error) {
	m, err := submat.NewMatrix(alphabet, rows)
	if err != nil {
		return nil, err
	}
	return NewCostModel[T](m, insertion, deletion)
}

// NewCostModelFromMatrixConfig is NewCostModelFromMatrix with the indel
// costs given as an IndelConfig.
func NewCostModelFromMatrixConfig[T Number](alphabet submat.Alphabet, rows [][]T, cfg IndelConfig[T]) (*CostModel[T], error) {
	m, err := submat.NewMatrix(alphabet, rows)
	if err != nil {
		return nil, err
	}
	return NewCostModelFromConfig[T](m, cfg)
}

// NewCostModelFromScalars builds a cost model from pure scalars: match and
// mismatch describe a dichotomous substitution table. All four values are
// required.
func NewCostModelFromScalars[T Number](s CostScheme[T]) (*CostModel[T], error) {
	if s.Match == nil {
		return nil, fmt.Errorf("%w: match", ErrMissingArgument)
	}
	if s.Mismatch == nil {
		return nil, fmt.Errorf("%w: mismatch", ErrMissingArgument)
	}
	insertion, deletion, err := s.IndelConfig.Resolve()
	if err != nil {
		return nil, err
	}
	return NewCostModel[T](submat.NewDichotomous(*s.Match, *s.Mismatch), insertion, deletion)
}
