package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput covers inputs rejected before any computation: negative
// watts, a year before the supported baseline, negative mix shares, or a
// utilization outside [0,1].
var ErrInvalidInput = errors.New("invalid input")

// ErrZeroPower is returned where a per-watt ratio is requested at zero
// power. The quantity is undefined there; we refuse rather than let an Inf
// or NaN propagate into downstream records.
var ErrZeroPower = errors.New("undefined at zero power")

func errInvalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
