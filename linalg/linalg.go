// Package linalg is the linear-algebra facade used by the rest of the
// module: a scalar type, small fixed-size 3-vector/3x3 helpers, a rigid
// transform, and a dense SPD system with Cholesky factorization.
package linalg

import "github.com/go-gl/mathgl/mgl64"

// Real is the scalar type used throughout the module. The reference
// implementation this module is ported from uses IEEE-754 single
// precision; this port uses double precision so that the dense system
// solve can be backed by gonum's float64-only linear algebra.
type Real = float64

// Vector3 is a 3-component vector: particle positions, spring endpoint
// deltas, attachment targets, gravity.
type Vector3 = mgl64.Vec3

// Matrix3 is a 3x3 matrix. The assembly code does not use it: it writes
// scaled identity blocks entry by entry into SymSystem and RectSystem.
type Matrix3 = mgl64.Mat3

// Isometry3 is a rigid transform: rotation then translation. It mirrors
// the reference implementation's use of nalgebra's Isometry3 for the
// grid builder's placement and a collider's world transform.
type Isometry3 struct {
	Rotation    mgl64.Quat
	Translation Vector3
}

// IdentityIsometry3 is the no-op transform.
func IdentityIsometry3() Isometry3 {
	return Isometry3{Rotation: mgl64.QuatIdent()}
}

// Apply transforms a point by the rotation followed by the translation.
func (t Isometry3) Apply(p Vector3) Vector3 {
	return t.Rotation.Rotate(p).Add(t.Translation)
}
