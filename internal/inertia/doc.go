// Package inertia resolves moments of inertia for the standard rigid-body
// shapes about their conventional rotation axes.
//
// Each [Shape] needs exactly one geometry parameter, carried by a
// [Geometry] value built with [Radius], [Length] or [CustomValue]:
//
//	I, err := inertia.Resolve(inertia.SolidSphere, 5.0, inertia.Radius(2.0))
//
// Supplying the wrong parameter kind for a shape is an error rather than
// a silent zero.
package inertia
