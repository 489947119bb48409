// Package config loads scoring-scheme files. A scheme is a small YAML
// document describing either a score model (affine-gap scoring) or a cost
// model (edit-distance costs), with the table given as match/mismatch
// scalars or as raw matrix rows over an alphabet.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqscore/seqscore/pkg/numeric"
	"github.com/seqscore/seqscore/pkg/scoring"
	"github.com/seqscore/seqscore/pkg/submat"
)

// Scheme is a decoded scheme file. Scalar fields are dynamically typed:
// YAML numbers arrive as int or float64 and are promoted to one common
// numeric kind before a model is built. Absent fields stay nil.
type Scheme struct {
	Model    string `yaml:"model"` // "score" (default) or "cost"
	Alphabet string `yaml:"alphabet"`

	// Table: either match/mismatch scalars or raw matrix rows over Alphabet.
	Match    any     `yaml:"match"`
	Mismatch any     `yaml:"mismatch"`
	Matrix   [][]any `yaml:"matrix"`

	// Score-model gap parameters, either spelling.
	GapOpen          any `yaml:"gap_open"`
	GapOpenPenalty   any `yaml:"gap_open_penalty"`
	GapExtend        any `yaml:"gap_extend"`
	GapExtendPenalty any `yaml:"gap_extend_penalty"`

	// Cost-model indel costs.
	Insertion any `yaml:"insertion"`
	Deletion  any `yaml:"deletion"`
}

// Model is a constructed scoring or costing model, viewed through its
// display summary. Callers that need the typed model use BuildScore or
// BuildCost directly.
type Model interface {
	Summary() scoring.Summary
}

// Default returns the scheme used when no file is given: EDNAFULL-style
// nucleotide scoring.
func Default() *Scheme {
	return &Scheme{
		Model:     "score",
		Match:     5,
		Mismatch:  -4,
		GapOpen:   -10,
		GapExtend: -1,
	}
}

// Load reads a scheme file from the given path. If the file does not
// exist, it returns the default scheme.
func Load(path string) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading scheme: %w", err)
	}

	var s Scheme
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scheme: %w", err)
	}
	return &s, nil
}

// Build constructs the model the scheme describes.
func (s *Scheme) Build() (Model, error) {
	switch s.Model {
	case "", "score":
		return s.BuildScore()
	case "cost":
		return s.BuildCost()
	default:
		return nil, fmt.Errorf("unknown model kind %q (want score or cost)", s.Model)
	}
}

// BuildScore constructs a score model from the scheme. All scalars present
// in the file are promoted to one numeric kind first; models built from
// dynamic input are instantiated at float64, the widest kind YAML carries.
func (s *Scheme) BuildScore() (*scoring.ScoreModel[float64], error) {
	if err := s.checkNumeric(); err != nil {
		return nil, err
	}

	cfg, err := s.gapConfig()
	if err != nil {
		return nil, err
	}

	if s.Matrix != nil {
		rows, err := s.matrixRows()
		if err != nil {
			return nil, err
		}
		return scoring.NewScoreModelFromMatrixConfig(submat.ParseAlphabet(s.Alphabet), rows, cfg)
	}

	match, err := scalar(s.Match)
	if err != nil {
		return nil, err
	}
	mismatch, err := scalar(s.Mismatch)
	if err != nil {
		return nil, err
	}
	return scoring.NewScoreModelFromScalars(scoring.ScoreScheme[float64]{
		Match:     match,
		Mismatch:  mismatch,
		GapConfig: cfg,
	})
}

// BuildCost constructs a cost model from the scheme.
func (s *Scheme) BuildCost() (*scoring.CostModel[float64], error) {
	if err := s.checkNumeric(); err != nil {
		return nil, err
	}

	insertion, err := scalar(s.Insertion)
	if err != nil {
		return nil, err
	}
	deletion, err := scalar(s.Deletion)
	if err != nil {
		return nil, err
	}
	cfg := scoring.IndelConfig[float64]{Insertion: insertion, Deletion: deletion}

	if s.Matrix != nil {
		rows, err := s.matrixRows()
		if err != nil {
			return nil, err
		}
		return scoring.NewCostModelFromMatrixConfig(submat.ParseAlphabet(s.Alphabet), rows, cfg)
	}

	match, err := scalar(s.Match)
	if err != nil {
		return nil, err
	}
	mismatch, err := scalar(s.Mismatch)
	if err != nil {
		return nil, err
	}
	return scoring.NewCostModelFromScalars(scoring.CostScheme[float64]{
		Match:       match,
		Mismatch:    mismatch,
		IndelConfig: cfg,
	})
}

// checkNumeric promotes every scalar present in the scheme, rejecting the
// whole scheme if any value has no numeric kind.
func (s *Scheme) checkNumeric() error {
	var present []any
	for _, v := range []any{
		s.Match, s.Mismatch,
		s.GapOpen, s.GapOpenPenalty, s.GapExtend, s.GapExtendPenalty,
		s.Insertion, s.Deletion,
	} {
		if v != nil {
			present = append(present, v)
		}
	}
	for _, row := range s.Matrix {
		present = append(present, row...)
	}
	if len(present) == 0 {
		return nil
	}
	if _, _, err := numeric.Promote(present...); err != nil {
		return fmt.Errorf("scheme scalars: %w", err)
	}
	return nil
}

func (s *Scheme) gapConfig() (scoring.GapConfig[float64], error) {
	var cfg scoring.GapConfig[float64]
	var err error
	if cfg.GapOpen, err = scalar(s.GapOpen); err != nil {
		return cfg, err
	}
	if cfg.GapOpenPenalty, err = scalar(s.GapOpenPenalty); err != nil {
		return cfg, err
	}
	if cfg.GapExtend, err = scalar(s.GapExtend); err != nil {
		return cfg, err
	}
	if cfg.GapExtendPenalty, err = scalar(s.GapExtendPenalty); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s *Scheme) matrixRows() ([][]float64, error) {
	rows := make([][]float64, len(s.Matrix))
	for i, row := range s.Matrix {
		rows[i] = make([]float64, len(row))
		for j, v := range row {
			f, err := numeric.AsFloat64(v)
			if err != nil {
				return nil, fmt.Errorf("matrix[%d][%d]: %w", i, j, err)
			}
			rows[i][j] = f
		}
	}
	return rows, nil
}

// scalar converts one optional dynamic value into an optional float64.
func scalar(v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	f, err := numeric.AsFloat64(v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
