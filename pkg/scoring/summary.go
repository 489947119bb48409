package scoring

import (
	"fmt"
	"strings"

	"github.com/seqscore/seqscore/pkg/submat"
)

// Summary is a deterministic, display-oriented view of a model. It is
// purely presentational; the alignment engine never reads it.
type Summary struct {
	Model    string  `json:"model"`
	Match    any     `json:"match,omitempty"`
	Mismatch any     `json:"mismatch,omitempty"`
	Alphabet string  `json:"alphabet,omitempty"`
	Matrix   [][]any `json:"matrix,omitempty"`

	GapOpen   any `json:"gap_open,omitempty"`
	GapExtend any `json:"gap_extend,omitempty"`
	Insertion any `json:"insertion,omitempty"`
	Deletion  any `json:"deletion,omitempty"`
}

// Summary returns the display view of the model: match/mismatch when the
// table is dichotomous, otherwise the alphabet and matrix rows.
func (m *ScoreModel[T]) Summary() Summary {
	s := tableSummary(m.table)
	s.Model = "ScoreModel"
	s.GapOpen = m.gapOpen
	s.GapExtend = m.gapExtend
	return s
}

// Summary returns the display view of the model.
func (m *CostModel[T]) Summary() Summary {
	s := tableSummary(m.table)
	s.Model = "CostModel"
	s.Insertion = m.insertion
	s.Deletion = m.deletion
	return s
}

func (m *ScoreModel[T]) String() string { return m.Summary().String() }

func (m *CostModel[T]) String() string { return m.Summary().String() }

func tableSummary[T Number](table submat.SubstitutionTable[T]) Summary {
	var s Summary
	switch t := table.(type) {
	case submat.Dichotomous[T]:
		s.Match = t.Match()
		s.Mismatch = t.Mismatch()
	case *submat.Matrix[T]:
		s.Alphabet = t.Alphabet().String()
		for _, row := range t.Rows() {
			boxed := make([]any, len(row))
			for i, v := range row {
				boxed[i] = v
			}
			s.Matrix = append(s.Matrix, boxed)
		}
	default:
		s.Alphabet = fmt.Sprintf("%v", table)
	}
	return s
}

// String formats the summary as a multi-line, human-readable block.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", s.Model)

	if s.Match != nil || s.Mismatch != nil {
		fmt.Fprintf(&b, "  match: %v\n", s.Match)
		fmt.Fprintf(&b, "  mismatch: %v\n", s.Mismatch)
	} else {
		fmt.Fprintf(&b, "  alphabet: %s\n", s.Alphabet)
		fmt.Fprintln(&b, "  matrix:")
		for _, row := range s.Matrix {
			parts := make([]string, len(row))
			for i, v := range row {
				parts[i] = fmt.Sprintf("%v", v)
			}
			fmt.Fprintf(&b, "    [%s]\n", strings.Join(parts, " "))
		}
	}

	if s.GapOpen != nil || s.GapExtend != nil {
		fmt.Fprintf(&b, "  gap_open: %v\n", s.GapOpen)
		fmt.Fprintf(&b, "  gap_extend: %v\n", s.GapExtend)
	}
	if s.Insertion != nil || s.Deletion != nil {
		fmt.Fprintf(&b, "  insertion: %v\n", s.Insertion)
		fmt.Fprintf(&b, "  deletion: %v\n", s.Deletion)
	}
	return b.String()
}
