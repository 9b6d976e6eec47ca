package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/rigidcalc/internal/inertia"
)

func TestAnalyze_FullScenario(t *testing.T) {
	// 2 kg solid cylinder, r=0.3 m, v=5 m/s, w=3 rad/s, h=5 m.
	s := Scenario{
		Mass:            2.0,
		Shape:           inertia.SolidCylinder,
		Geometry:        inertia.Radius(0.3),
		Velocity:        5.0,
		AngularVelocity: 3.0,
		Height:          5.0,
	}

	b, err := Analyze(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(b.MomentOfInertia-0.09) > 1e-9 {
		t.Errorf("expected I=0.09, got %v", b.MomentOfInertia)
	}
	if math.Abs(b.KineticTranslational-25.0) > 1e-9 {
		t.Errorf("expected 25 J translational, got %v", b.KineticTranslational)
	}
	if math.Abs(b.KineticRotational-0.405) > 1e-9 {
		t.Errorf("expected 0.405 J rotational, got %v", b.KineticRotational)
	}
	if math.Abs(b.PotentialGravity-98.1) > 1e-9 {
		t.Errorf("expected 98.1 J gravitational, got %v", b.PotentialGravity)
	}
	if math.Abs(b.Total-123.505) > 1e-9 {
		t.Errorf("expected total 123.505 J, got %v", b.Total)
	}
}

func TestAnalyze_EntriesMatchTotals(t *testing.T) {
	s := Scenario{
		Mass:            1.0,
		Shape:           inertia.SolidSphere,
		Geometry:        inertia.Radius(0.5),
		Velocity:        2.0,
		AngularVelocity: 4.0,
		Height:          1.0,
	}

	b, err := Analyze(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(b.Labels()) != len(b.Values()) {
		t.Fatal("labels and values length differ")
	}

	sum := 0.0
	for _, v := range b.Values() {
		sum += v
	}
	if math.Abs(sum-b.Total) > 1e-9 {
		t.Errorf("entries sum %v differs from total %v", sum, b.Total)
	}
}

func TestAnalyze_ElasticEntry(t *testing.T) {
	s := Scenario{
		Mass:               1.0,
		Shape:              inertia.Custom,
		Geometry:           inertia.CustomValue(0),
		SpringConstant:     100.0,
		SpringDisplacement: 0.5,
	}

	b, err := Analyze(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(b.PotentialElastic-12.5) > 1e-9 {
		t.Errorf("expected 12.5 J elastic, got %v", b.PotentialElastic)
	}
	if len(b.Entries) != 4 {
		t.Errorf("expected elastic entry to be listed, got %d entries", len(b.Entries))
	}
}

func TestAnalyze_InvalidMass(t *testing.T) {
	_, err := Analyze(Scenario{Mass: 0, Shape: inertia.Disk, Geometry: inertia.Radius(1)})
	if !errors.Is(err, ErrInvalidScenario) {
		t.Errorf("expected ErrInvalidScenario, got %v", err)
	}
}

func TestAnalyze_MissingGeometry(t *testing.T) {
	_, err := Analyze(Scenario{Mass: 1.0, Shape: inertia.Disk})
	if !errors.Is(err, inertia.ErrMissingParameter) {
		t.Errorf("expected ErrMissingParameter, got %v", err)
	}
}

func TestShare(t *testing.T) {
	s := Scenario{
		Mass:     2.0,
		Shape:    inertia.Custom,
		Geometry: inertia.CustomValue(0),
		Velocity: 5.0,
	}

	b, err := Analyze(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := b.Share("kinetic translational"); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected share 1.0, got %v", got)
	}
	if got := b.Share("potential gravitational"); got != 0 {
		t.Errorf("expected share 0, got %v", got)
	}
}

func TestEquivalentConversions(t *testing.T) {
	// E = 25 J, m = 2 kg: v = sqrt(25) = 5.
	if got := EquivalentVelocity(25.0, 2.0); math.Abs(got-5.0) > 1e-9 {
		t.Errorf("expected 5, got %v", got)
	}

	// E = 98.1 J, m = 2 kg: h = 5 m.
	if got := EquivalentHeight(98.1, 2.0, 0); math.Abs(got-5.0) > 1e-9 {
		t.Errorf("expected 5, got %v", got)
	}

	// E = 0.405 J, I = 0.09: w = 3 rad/s.
	if got := EquivalentAngularVelocity(0.405, 0.09); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("expected 3, got %v", got)
	}

	// Degenerate denominators yield 0 rather than Inf.
	if EquivalentVelocity(10.0, 0) != 0 {
		t.Error("expected 0 for zero mass")
	}
	if EquivalentAngularVelocity(10.0, 0) != 0 {
		t.Error("expected 0 for zero inertia")
	}
}

func TestDetailWorkConstant(t *testing.T) {
	d := DetailWorkConstant(50.0, 5.0, 60.0)
	if math.Abs(d.CosFactor-0.5) > 1e-9 {
		t.Errorf("expected cos factor 0.5, got %v", d.CosFactor)
	}
	if math.Abs(d.Work-125.0) > 1e-9 {
		t.Errorf("expected 125 J, got %v", d.Work)
	}
}
