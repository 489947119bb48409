// Package numeric resolves heterogeneous scalar inputs to a single common
// numeric kind. It backs the dynamically typed construction path, where
// score values arrive as any (for example after YAML decoding) and must
// land in one numeric domain before a model is built.
package numeric

import (
	"errors"
	"fmt"
)

// ErrNotNumeric is returned when a value has no numeric promotion target.
var ErrNotNumeric = errors.New("value is not numeric")

// Kind is a common numeric domain, ordered from narrowest to widest.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat32
	KindFloat64
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// KindOf classifies a single scalar. All integer widths (signed and
// unsigned) map to KindInt; anything non-numeric fails with ErrNotNumeric.
func KindOf(v any) (Kind, error) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt, nil
	case float32:
		return KindFloat32, nil
	case float64:
		return KindFloat64, nil
	default:
		return KindInvalid, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}

// Widen returns the widest kind among the given scalars: any float makes the
// result a float kind, and a wider float wins over a narrower one.
func Widen(vals ...any) (Kind, error) {
	widest := KindInvalid
	for _, v := range vals {
		k, err := KindOf(v)
		if err != nil {
			return KindInvalid, err
		}
		if k > widest {
			widest = k
		}
	}
	if widest == KindInvalid {
		return KindInvalid, fmt.Errorf("%w: no values", ErrNotNumeric)
	}
	return widest, nil
}

// Promote coerces all scalars into one domain and reports the widest kind
// they share. Values are returned as float64, which represents every int
// and float32 score a substitution table realistically carries.
func Promote(vals ...any) ([]float64, Kind, error) {
	kind, err := Widen(vals...)
	if err != nil {
		return nil, KindInvalid, err
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, err := AsFloat64(v)
		if err != nil {
			return nil, KindInvalid, err
		}
		out[i] = f
	}
	return out, kind, nil
}

// AsFloat64 converts a single numeric scalar to float64.
func AsFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}
