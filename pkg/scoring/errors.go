package scoring

import "errors"

// ErrConfiguration is returned when a resolved parameter violates its sign
// invariant: a positive gap penalty on a score model, or a negative
// insertion/deletion cost on a cost model.
var ErrConfiguration = errors.New("invalid model configuration")

// ErrMissingArgument is returned when a required parameter (and every
// accepted spelling of it) is absent.
var ErrMissingArgument = errors.New("missing required argument")
