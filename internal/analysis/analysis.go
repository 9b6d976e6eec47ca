// Package analysis composes the mechanics formulas into full work and
// energy breakdowns for a rigid-body scenario.
package analysis

import (
	"errors"

	"github.com/san-kum/rigidcalc/internal/inertia"
	"github.com/san-kum/rigidcalc/internal/mechanics"
)

// ErrInvalidScenario indicates scenario parameters outside their valid
// range.
var ErrInvalidScenario = errors.New("analysis: invalid scenario")

// Scenario captures one rigid body and its kinematic state. It is an
// immutable input record: build one per analysis pass.
type Scenario struct {
	Mass            float64
	Shape           inertia.Shape
	Geometry        inertia.Geometry
	Velocity        float64
	AngularVelocity float64
	Height          float64
	Gravity         float64 // 0 means mechanics.StandardGravity

	// Optional spring attached to the body.
	SpringConstant     float64
	SpringDisplacement float64
}

// Entry is one labeled energy contribution in joules.
type Entry struct {
	Label  string
	Joules float64
}

// Breakdown is the full energy accounting for a scenario.
type Breakdown struct {
	MomentOfInertia float64
	Entries         []Entry

	KineticTranslational float64
	KineticRotational    float64
	PotentialGravity     float64
	PotentialElastic     float64
	Total                float64
}

// Analyze resolves the body's moment of inertia and evaluates every
// energy term for the scenario.
func Analyze(s Scenario) (*Breakdown, error) {
	if s.Mass <= 0 {
		return nil, errors.Join(ErrInvalidScenario, errors.New("mass must be positive"))
	}

	g := s.Gravity
	if g == 0 {
		g = mechanics.StandardGravity
	}

	moment, err := inertia.Resolve(s.Shape, s.Mass, s.Geometry)
	if err != nil {
		return nil, err
	}

	b := &Breakdown{
		MomentOfInertia:      moment,
		KineticTranslational: mechanics.KineticTranslational(s.Mass, s.Velocity),
		KineticRotational:    mechanics.KineticRotational(moment, s.AngularVelocity),
		PotentialGravity:     mechanics.PotentialGravitational(s.Mass, s.Height, g),
		PotentialElastic:     mechanics.PotentialElastic(s.SpringConstant, s.SpringDisplacement),
	}
	b.Total = b.KineticTranslational + b.KineticRotational + b.PotentialGravity + b.PotentialElastic

	b.Entries = []Entry{
		{Label: "kinetic translational", Joules: b.KineticTranslational},
		{Label: "kinetic rotational", Joules: b.KineticRotational},
		{Label: "potential gravitational", Joules: b.PotentialGravity},
	}
	if s.SpringConstant != 0 {
		b.Entries = append(b.Entries, Entry{Label: "potential elastic", Joules: b.PotentialElastic})
	}

	return b, nil
}

// Labels returns the entry labels in order, for charting.
func (b *Breakdown) Labels() []string {
	labels := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		labels[i] = e.Label
	}
	return labels
}

// Values returns the entry energies in order, for charting.
func (b *Breakdown) Values() []float64 {
	values := make([]float64, len(b.Entries))
	for i, e := range b.Entries {
		values[i] = e.Joules
	}
	return values
}

// Share returns the fraction of the total carried by one entry, or 0
// when the total is zero.
func (b *Breakdown) Share(label string) float64 {
	if b.Total == 0 {
		return 0
	}
	for _, e := range b.Entries {
		if e.Label == label {
			return e.Joules / b.Total
		}
	}
	return 0
}
