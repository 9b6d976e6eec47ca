package analysis

import (
	"math"

	"github.com/san-kum/rigidcalc/internal/mechanics"
)

// Equivalent-state conversions: the speed, drop height or spin rate that
// would hold the given energy on its own.

// EquivalentVelocity returns the speed at which a body of the given mass
// carries the energy purely translationally: v = sqrt(2E/m).
func EquivalentVelocity(energy, mass float64) float64 {
	if mass <= 0 || energy < 0 {
		return 0
	}
	return math.Sqrt(2 * energy / mass)
}

// EquivalentHeight returns the height from which the body would have to
// fall to hold the energy gravitationally: h = E/(m*g).
func EquivalentHeight(energy, mass, g float64) float64 {
	if g == 0 {
		g = mechanics.StandardGravity
	}
	if mass <= 0 {
		return 0
	}
	return energy / (mass * g)
}

// EquivalentAngularVelocity returns the spin rate at which a body with
// the given moment of inertia holds the energy rotationally:
// w = sqrt(2E/I).
func EquivalentAngularVelocity(energy, momentOfInertia float64) float64 {
	if momentOfInertia <= 0 || energy < 0 {
		return 0
	}
	return math.Sqrt(2 * energy / momentOfInertia)
}

// WorkConstantDetail spells out each factor of a constant-force work
// calculation for display.
type WorkConstantDetail struct {
	Force        float64
	Displacement float64
	AngleDegrees float64
	CosFactor    float64
	Work         float64
}

// DetailWorkConstant computes constant-force work along with the
// intermediate cosine factor.
func DetailWorkConstant(force, displacement, angleDegrees float64) WorkConstantDetail {
	return WorkConstantDetail{
		Force:        force,
		Displacement: displacement,
		AngleDegrees: angleDegrees,
		CosFactor:    math.Cos(angleDegrees * math.Pi / 180.0),
		Work:         mechanics.WorkConstantForce(force, displacement, angleDegrees),
	}
}
