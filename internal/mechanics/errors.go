package mechanics

import "errors"

// Domain errors for formula inputs.
var (
	// ErrLengthMismatch indicates force and displacement sequences of
	// different lengths.
	ErrLengthMismatch = errors.New("mechanics: force and displacement lengths differ")

	// ErrTooFewSamples indicates a curve with fewer than two samples,
	// which has no integrable interval.
	ErrTooFewSamples = errors.New("mechanics: need at least two samples to integrate")
)
