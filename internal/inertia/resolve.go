package inertia

import (
	"errors"
	"fmt"
)

// ErrMissingParameter indicates the geometry value does not carry the
// parameter the shape requires.
var ErrMissingParameter = errors.New("inertia: missing required geometry parameter")

// Parameter is the kind of geometry value a shape formula consumes.
type Parameter int

const (
	ParamNone Parameter = iota
	ParamRadius
	ParamLength
	ParamCustom
)

func (p Parameter) String() string {
	switch p {
	case ParamRadius:
		return "radius"
	case ParamLength:
		return "length"
	case ParamCustom:
		return "custom inertia"
	default:
		return "none"
	}
}

// Geometry carries exactly one geometry parameter for a shape. The zero
// value carries none.
type Geometry struct {
	kind  Parameter
	value float64
}

// Radius builds a Geometry carrying a radius in meters.
func Radius(r float64) Geometry {
	return Geometry{kind: ParamRadius, value: r}
}

// Length builds a Geometry carrying a rod length in meters.
func Length(l float64) Geometry {
	return Geometry{kind: ParamLength, value: l}
}

// CustomValue builds a Geometry carrying a directly supplied moment of
// inertia in kg*m^2.
func CustomValue(i float64) Geometry {
	return Geometry{kind: ParamCustom, value: i}
}

// Kind reports which parameter the geometry carries.
func (g Geometry) Kind() Parameter { return g.kind }

// Value returns the carried parameter value.
func (g Geometry) Value() float64 { return g.value }

// Resolve returns the moment of inertia for a body of the given shape and
// mass. Shapes other than Custom require the matching geometry parameter
// and return ErrMissingParameter when it is absent. Custom (and any
// out-of-range shape) falls back to the supplied custom inertia value,
// or 0 when none was given; that fallback is defined behavior, not an
// error.
func Resolve(shape Shape, mass float64, geom Geometry) (float64, error) {
	switch shape {
	case SolidSphere:
		r, err := requireParam(shape, geom, ParamRadius)
		if err != nil {
			return 0, err
		}
		return (2.0 / 5.0) * mass * r * r, nil
	case HollowSphere:
		r, err := requireParam(shape, geom, ParamRadius)
		if err != nil {
			return 0, err
		}
		return (2.0 / 3.0) * mass * r * r, nil
	case SolidCylinder:
		r, err := requireParam(shape, geom, ParamRadius)
		if err != nil {
			return 0, err
		}
		return 0.5 * mass * r * r, nil
	case HollowCylinder:
		r, err := requireParam(shape, geom, ParamRadius)
		if err != nil {
			return 0, err
		}
		return mass * r * r, nil
	case RodCenter:
		l, err := requireParam(shape, geom, ParamLength)
		if err != nil {
			return 0, err
		}
		return (1.0 / 12.0) * mass * l * l, nil
	case RodEnd:
		l, err := requireParam(shape, geom, ParamLength)
		if err != nil {
			return 0, err
		}
		return (1.0 / 3.0) * mass * l * l, nil
	case Disk:
		r, err := requireParam(shape, geom, ParamRadius)
		if err != nil {
			return 0, err
		}
		return 0.5 * mass * r * r, nil
	default:
		if geom.kind == ParamCustom {
			return geom.value, nil
		}
		return 0, nil
	}
}

func requireParam(shape Shape, geom Geometry, want Parameter) (float64, error) {
	if geom.kind != want {
		return 0, fmt.Errorf("%w: %s needs %s, got %s", ErrMissingParameter, shape, want, geom.kind)
	}
	return geom.value, nil
}
