package inertia

import "fmt"

// Shape identifies a rigid body with a known moment-of-inertia formula.
type Shape int

const (
	SolidSphere Shape = iota
	HollowSphere
	SolidCylinder
	HollowCylinder
	RodCenter
	RodEnd
	Disk
	Custom
)

var shapeNames = map[Shape]string{
	SolidSphere:    "solid_sphere",
	HollowSphere:   "hollow_sphere",
	SolidCylinder:  "solid_cylinder",
	HollowCylinder: "hollow_cylinder",
	RodCenter:      "rod_center",
	RodEnd:         "rod_end",
	Disk:           "disk",
	Custom:         "custom",
}

var shapeDescriptions = map[Shape]string{
	SolidSphere:    "solid sphere, axis through center: I = (2/5) m r^2",
	HollowSphere:   "thin spherical shell, axis through center: I = (2/3) m r^2",
	SolidCylinder:  "solid cylinder, central axis: I = (1/2) m r^2",
	HollowCylinder: "thin cylindrical shell, central axis: I = m r^2",
	RodCenter:      "thin rod, axis through center: I = (1/12) m L^2",
	RodEnd:         "thin rod, axis through one end: I = (1/3) m L^2",
	Disk:           "uniform disk, central axis: I = (1/2) m r^2",
	Custom:         "directly supplied moment of inertia",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Description returns a human-readable summary of the shape and its
// formula.
func (s Shape) Description() string {
	return shapeDescriptions[s]
}

// Shapes returns all shapes in declaration order.
func Shapes() []Shape {
	return []Shape{
		SolidSphere, HollowSphere, SolidCylinder, HollowCylinder,
		RodCenter, RodEnd, Disk, Custom,
	}
}

// ParseShape converts a shape name as used in CLI flags and config files
// back into a Shape.
func ParseShape(name string) (Shape, error) {
	for shape, n := range shapeNames {
		if n == name {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("inertia: unknown shape: %s", name)
}

// RequiredParameter reports which geometry parameter the shape needs.
func (s Shape) RequiredParameter() Parameter {
	switch s {
	case SolidSphere, HollowSphere, SolidCylinder, HollowCylinder, Disk:
		return ParamRadius
	case RodCenter, RodEnd:
		return ParamLength
	default:
		return ParamCustom
	}
}
