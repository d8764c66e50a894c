// Package vesta provides a Vesta curve implementation of the
// [group.Group] interface.
//
// Vesta is y^2 = x^3 + 5 over the Pasta field q, with prime order p. Its
// base field is the Pallas scalar field and its scalar field is the Pallas
// base field; both come from kryptology's native pasta packages. Only the
// point formulas live here, in homogeneous projective coordinates.
//
// The encoding matches [github.com/f3rmion/curvebench/pallas].
package vesta
