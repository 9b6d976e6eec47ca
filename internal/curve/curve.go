// Package curve builds and loads force-vs-displacement sample curves for
// variable-force work calculations.
package curve

import (
	"fmt"

	"github.com/san-kum/rigidcalc/internal/mechanics"
)

// ForceCurve is an ordered sequence of (displacement, force) samples. It
// is a value type: build it once per calculation and discard it.
type ForceCurve struct {
	Displacements []float64
	Forces        []float64
}

// FromSamples pairs up displacement and force slices into a curve.
func FromSamples(displacements, forces []float64) (*ForceCurve, error) {
	if len(displacements) != len(forces) {
		return nil, mechanics.ErrLengthMismatch
	}
	if len(displacements) < 2 {
		return nil, mechanics.ErrTooFewSamples
	}
	return &ForceCurve{
		Displacements: displacements,
		Forces:        forces,
	}, nil
}

// Sample evaluates f at n evenly spaced displacements across [x0, x1].
func Sample(f func(x float64) float64, x0, x1 float64, n int) (*ForceCurve, error) {
	if n < 2 {
		return nil, mechanics.ErrTooFewSamples
	}
	displacements := make([]float64, n)
	forces := make([]float64, n)
	for i := 0; i < n; i++ {
		x := x0 + (x1-x0)*float64(i)/float64(n-1)
		displacements[i] = x
		forces[i] = f(x)
	}
	return &ForceCurve{Displacements: displacements, Forces: forces}, nil
}

// Linear samples F(x) = a*x + b over [0, xMax] at n points.
func Linear(a, b, xMax float64, n int) (*ForceCurve, error) {
	return Sample(func(x float64) float64 { return a*x + b }, 0, xMax, n)
}

// Quadratic samples F(x) = a*x^2 + b*x + c over [0, xMax] at n points.
func Quadratic(a, b, c, xMax float64, n int) (*ForceCurve, error) {
	return Sample(func(x float64) float64 { return a*x*x + b*x + c }, 0, xMax, n)
}

// Len returns the number of samples.
func (c *ForceCurve) Len() int { return len(c.Displacements) }

// Work integrates the curve with the trapezoidal rule. The value matches
// mechanics.WorkVariableForce on the same samples exactly.
func (c *ForceCurve) Work() (float64, error) {
	return mechanics.WorkVariableForce(c.Forces, c.Displacements)
}

// Monotonic reports whether displacements are non-decreasing, the
// physically meaningful ordering for a work integral. Integration is
// still defined for non-monotonic curves; reversed segments contribute
// negative area.
func (c *ForceCurve) Monotonic() bool {
	for i := 0; i < len(c.Displacements)-1; i++ {
		if c.Displacements[i+1] < c.Displacements[i] {
			return false
		}
	}
	return true
}

func (c *ForceCurve) String() string {
	if c.Len() == 0 {
		return "force curve (empty)"
	}
	return fmt.Sprintf("force curve: %d samples over [%.3g, %.3g] m",
		c.Len(), c.Displacements[0], c.Displacements[c.Len()-1])
}
