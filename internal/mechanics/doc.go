// Package mechanics provides the closed-form work and energy formulas
// for rigid bodies.
//
// All functions are pure and operate on SI quantities:
//
//   - [KineticTranslational], [KineticRotational]: kinetic energy
//   - [PotentialGravitational], [PotentialElastic]: potential energy
//   - [WorkConstantForce], [WorkVariableForce]: work done by a force
//   - [Power]: average power over an interval
//
// # Numerical Integration
//
// WorkVariableForce integrates a sampled force curve with the composite
// trapezoidal rule, which handles unevenly spaced displacement samples:
//
//	w, err := mechanics.WorkVariableForce(forces, displacements)
//
// The samples need not be monotonic in displacement; reversed segments
// contribute signed (negative) area.
package mechanics
