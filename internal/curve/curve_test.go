package curve

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/rigidcalc/internal/mechanics"
)

func TestLinearCurveWork(t *testing.T) {
	// F(x) = 10 (a=0, b=10) over [0, 5]: closed form is 50 J.
	c, err := Linear(0, 10, 5.0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, err := c.Work()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(w-50.0) > 1e-9 {
		t.Errorf("expected 50, got %v", w)
	}
}

func TestQuadraticCurveWork(t *testing.T) {
	// F(x) = x^2 over [0, 3]: closed form is 9 J.
	c, err := Quadratic(1, 0, 0, 3.0, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, err := c.Work()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(w-9.0)/9.0 > 0.01 {
		t.Errorf("integration error above 1%%: got %v", w)
	}
}

func TestWorkMatchesMechanics(t *testing.T) {
	c, err := Linear(2, 1, 4.0, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := mechanics.WorkVariableForce(c.Forces, c.Displacements)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := c.Work()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("curve work %v differs from mechanics result %v", got, want)
	}
}

func TestFromSamplesValidation(t *testing.T) {
	if _, err := FromSamples([]float64{0, 1}, []float64{5}); !errors.Is(err, mechanics.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	if _, err := FromSamples([]float64{0}, []float64{5}); !errors.Is(err, mechanics.ErrTooFewSamples) {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
}

func TestMonotonic(t *testing.T) {
	c, _ := FromSamples([]float64{0, 1, 2}, []float64{1, 1, 1})
	if !c.Monotonic() {
		t.Error("expected monotonic")
	}

	c, _ = FromSamples([]float64{0, 2, 1}, []float64{1, 1, 1})
	if c.Monotonic() {
		t.Error("expected non-monotonic")
	}
}

func TestReadCSV(t *testing.T) {
	in := "displacement,force\n0,10\n1,10\n2,10\n"
	c, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", c.Len())
	}

	w, err := c.Work()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(w-20.0) > 1e-9 {
		t.Errorf("expected 20, got %v", w)
	}
}

func TestReadCSV_NoHeader(t *testing.T) {
	c, err := ReadCSV(strings.NewReader("0,5\n2,5\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 samples, got %d", c.Len())
	}
}

func TestReadCSV_BadRow(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("0,5\nnope,5\n")); err == nil {
		t.Error("expected error for non-numeric data row")
	}
}
