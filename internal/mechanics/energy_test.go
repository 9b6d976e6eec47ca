package mechanics

import (
	"math"
	"testing"
)

func TestKineticTranslational(t *testing.T) {
	tests := []struct {
		mass, velocity, expected float64
	}{
		{2.0, 5.0, 25.0},
		{1.0, 10.0, 50.0},
		{5.0, 0.0, 0.0},
		{0.0, 100.0, 0.0},
	}

	for _, tt := range tests {
		got := KineticTranslational(tt.mass, tt.velocity)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("KineticTranslational(%v, %v) = %v, expected %v", tt.mass, tt.velocity, got, tt.expected)
		}
	}
}

func TestKineticTranslational_SignOfVelocity(t *testing.T) {
	// Energy depends on speed, not direction.
	if KineticTranslational(3.0, -4.0) != KineticTranslational(3.0, 4.0) {
		t.Error("kinetic energy should not depend on velocity sign")
	}
}

func TestKineticRotational(t *testing.T) {
	got := KineticRotational(0.09, 3.0)
	if math.Abs(got-0.405) > 1e-9 {
		t.Errorf("expected 0.405, got %v", got)
	}

	if KineticRotational(1.0, 0.0) != 0 {
		t.Error("expected zero energy at zero angular velocity")
	}
	if KineticRotational(0.0, 5.0) != 0 {
		t.Error("expected zero energy at zero inertia")
	}
	if KineticRotational(2.0, -3.0) < 0 {
		t.Error("rotational kinetic energy must be non-negative")
	}
}

func TestPotentialGravitational(t *testing.T) {
	got := PotentialGravitational(2.0, 5.0, StandardGravity)
	if math.Abs(got-98.1) > 1e-9 {
		t.Errorf("expected 98.1, got %v", got)
	}
}

func TestPotentialGravitational_Linearity(t *testing.T) {
	base := PotentialGravitational(1.0, 2.0, 9.81)

	if math.Abs(PotentialGravitational(3.0, 2.0, 9.81)-3*base) > 1e-9 {
		t.Error("not linear in mass")
	}
	if math.Abs(PotentialGravitational(1.0, 6.0, 9.81)-3*base) > 1e-9 {
		t.Error("not linear in height")
	}
	if math.Abs(PotentialGravitational(1.0, 2.0, 3*9.81)-3*base) > 1e-9 {
		t.Error("not linear in g")
	}
}

func TestPotentialGravitational_CustomGravity(t *testing.T) {
	// Lunar gravity.
	got := PotentialGravitational(10.0, 2.0, 1.62)
	if math.Abs(got-32.4) > 1e-9 {
		t.Errorf("expected 32.4, got %v", got)
	}
}

func TestPotentialElastic(t *testing.T) {
	got := PotentialElastic(100.0, 0.5)
	if math.Abs(got-12.5) > 1e-9 {
		t.Errorf("expected 12.5, got %v", got)
	}

	// Compression and extension store the same energy.
	if PotentialElastic(50.0, -0.2) != PotentialElastic(50.0, 0.2) {
		t.Error("elastic energy should not depend on displacement sign")
	}
}
