package mechanics

// StandardGravity is the conventional value of g at the Earth's surface,
// in m/s^2.
const StandardGravity = 9.81

// KineticTranslational returns the kinetic energy of a body of the given
// mass moving at the given velocity: 0.5*m*v^2.
func KineticTranslational(mass, velocity float64) float64 {
	return 0.5 * mass * velocity * velocity
}

// KineticRotational returns the rotational kinetic energy of a body with
// the given moment of inertia spinning at the given angular velocity:
// 0.5*I*w^2.
func KineticRotational(momentOfInertia, angularVelocity float64) float64 {
	return 0.5 * momentOfInertia * angularVelocity * angularVelocity
}

// PotentialGravitational returns the gravitational potential energy m*g*h
// relative to the reference height. Pass [StandardGravity] for g unless
// the scenario overrides it.
func PotentialGravitational(mass, height, g float64) float64 {
	return mass * g * height
}

// PotentialElastic returns the energy stored in a spring of the given
// constant stretched or compressed by the given displacement: 0.5*k*x^2.
func PotentialElastic(springConstant, displacement float64) float64 {
	return 0.5 * springConstant * displacement * displacement
}
