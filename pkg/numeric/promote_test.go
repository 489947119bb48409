package numeric_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/seqscore/seqscore/pkg/numeric"
)

func TestWiden(t *testing.T) {
	tests := []struct {
		name    string
		vals    []any
		want    numeric.Kind
		wantErr bool
	}{
		{name: "all ints", vals: []any{1, int64(-3), uint8(2)}, want: numeric.KindInt},
		{name: "int and float64", vals: []any{5, -3.5}, want: numeric.KindFloat64},
		{name: "int and float32", vals: []any{5, float32(-3)}, want: numeric.KindFloat32},
		{name: "float32 and float64", vals: []any{float32(1), 2.0}, want: numeric.KindFloat64},
		{name: "single float64", vals: []any{0.5}, want: numeric.KindFloat64},
		{name: "string input", vals: []any{1, "two"}, wantErr: true},
		{name: "bool input", vals: []any{true}, wantErr: true},
		{name: "nil input", vals: []any{nil}, wantErr: true},
		{name: "no values", vals: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := numeric.Widen(tt.vals...)
			if tt.wantErr {
				if !errors.Is(err, numeric.ErrNotNumeric) {
					t.Fatalf("Widen() error = %v, want ErrNotNumeric", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Widen() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Widen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromote(t *testing.T) {
	vals, kind, err := numeric.Promote(5, -3, float32(-2), -1.5)
	if err != nil {
		t.Fatalf("Promote() error: %v", err)
	}
	if kind != numeric.KindFloat64 {
		t.Errorf("Promote() kind = %v, want float64", kind)
	}
	if diff := cmp.Diff([]float64{5, -3, -2, -1.5}, vals); diff != "" {
		t.Errorf("Promote() values mismatch (-want +got):\n%s", diff)
	}
}

func TestPromoteAllInts(t *testing.T) {
	vals, kind, err := numeric.Promote(0, 1, 2, 2)
	if err != nil {
		t.Fatalf("Promote() error: %v", err)
	}
	if kind != numeric.KindInt {
		t.Errorf("Promote() kind = %v, want int", kind)
	}
	if diff := cmp.Diff([]float64{0, 1, 2, 2}, vals); diff != "" {
		t.Errorf("Promote() values mismatch (-want +got):\n%s", diff)
	}
}

func TestPromoteRejectsNonNumeric(t *testing.T) {
	_, _, err := numeric.Promote(1, 2, "three")
	if !errors.Is(err, numeric.ErrNotNumeric) {
		t.Errorf("Promote() error = %v, want ErrNotNumeric", err)
	}
}
