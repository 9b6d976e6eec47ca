package mechanics

import "math"

// WorkConstantForce returns the work done by a constant force acting over
// a straight displacement, with the angle between force and displacement
// given in degrees: F*d*cos(theta).
func WorkConstantForce(force, displacement, angleDegrees float64) float64 {
	return force * displacement * math.Cos(angleDegrees*math.Pi/180.0)
}

// WorkVariableForce integrates a sampled force over displacement using
// the composite trapezoidal rule. The two slices pair up sample-wise and
// may be unevenly spaced. Decreasing displacement segments contribute
// negative area.
func WorkVariableForce(forces, displacements []float64) (float64, error) {
	if len(forces) != len(displacements) {
		return 0, ErrLengthMismatch
	}
	if len(forces) < 2 {
		return 0, ErrTooFewSamples
	}

	work := 0.0
	for i := 0; i < len(forces)-1; i++ {
		work += 0.5 * (forces[i] + forces[i+1]) * (displacements[i+1] - displacements[i])
	}
	return work, nil
}

// Power returns work divided by time. A zero time interval yields zero
// power by convention rather than an error.
func Power(work, time float64) float64 {
	if time == 0 {
		return 0
	}
	return work / time
}
