package submat_test

import (
	"errors"
	"testing"

	"github.com/seqscore/seqscore/pkg/submat"
)

func TestDichotomousScore(t *testing.T) {
	d := submat.NewDichotomous(5, -3)

	for _, s := range submat.DNA {
		if got := d.Score(s, s); got != 5 {
			t.Errorf("Score(%c, %c) = %d, want 5", s, s, got)
		}
	}
	if got := d.Score('A', 'G'); got != -3 {
		t.Errorf("Score(A, G) = %d, want -3", got)
	}
	if d.Match() != 5 || d.Mismatch() != -3 {
		t.Errorf("accessors = (%d, %d), want (5, -3)", d.Match(), d.Mismatch())
	}
}

func TestDichotomousEqual(t *testing.T) {
	a := submat.NewDichotomous(1.0, -1.0)
	b := submat.NewDichotomous(1.0, -1.0)
	c := submat.NewDichotomous(1.0, -2.0)

	if !a.Equal(b) {
		t.Error("expected tables with identical scalars to be equal")
	}
	if a.Equal(c) {
		t.Error("expected tables with different mismatch scores to differ")
	}
}

func TestNewMatrix(t *testing.T) {
	rows := [][]int{
		{1, -1, -1, -1},
		{-1, 1, -1, -1},
		{-1, -1, 1, -1},
		{-1, -1, -1, 1},
	}

	m, err := submat.NewMatrix(submat.DNA, rows)
	if err != nil {
		t.Fatalf("NewMatrix() error: %v", err)
	}

	if got := m.Score('A', 'A'); got != 1 {
		t.Errorf("Score(A, A) = %d, want 1", got)
	}
	if got := m.Score('A', 'T'); got != -1 {
		t.Errorf("Score(A, T) = %d, want -1", got)
	}
	if m.Alphabet().String() != "ACGT" {
		t.Errorf("Alphabet() = %s, want ACGT", m.Alphabet())
	}
}

func TestNewMatrixDimensionErrors(t *testing.T) {
	tests := []struct {
		name     string
		alphabet submat.Alphabet
		rows     [][]float64
	}{
		{
			name:     "empty alphabet",
			alphabet: submat.NewAlphabet(),
			rows:     nil,
		},
		{
			name:     "too few rows",
			alphabet: submat.ParseAlphabet("AC"),
			rows:     [][]float64{{1, -1}},
		},
		{
			name:     "ragged row",
			alphabet: submat.ParseAlphabet("AC"),
			rows:     [][]float64{{1, -1}, {-1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := submat.NewMatrix(tt.alphabet, tt.rows)
			if !errors.Is(err, submat.ErrDimension) {
				t.Errorf("NewMatrix() error = %v, want ErrDimension", err)
			}
		})
	}
}

func TestNewMatrixDuplicateSymbol(t *testing.T) {
	_, err := submat.NewMatrix(submat.ParseAlphabet("AA"), [][]int{{1, 1}, {1, 1}})
	if !errors.Is(err, submat.ErrDuplicateSymbol) {
		t.Errorf("NewMatrix() error = %v, want ErrDuplicateSymbol", err)
	}
}

func TestMatrixRowsCopied(t *testing.T) {
	rows := [][]int{{1, -1}, {-1, 1}}
	m, err := submat.NewMatrix(submat.ParseAlphabet("AC"), rows)
	if err != nil {
		t.Fatalf("NewMatrix() error: %v", err)
	}

	rows[0][0] = 99
	if got := m.Score('A', 'A'); got != 1 {
		t.Errorf("Score(A, A) = %d after mutating caller slice, want 1", got)
	}

	out := m.Rows()
	out[1][1] = 99
	if got := m.Score('C', 'C'); got != 1 {
		t.Errorf("Score(C, C) = %d after mutating Rows() copy, want 1", got)
	}
}
