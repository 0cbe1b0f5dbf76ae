// Package collider implements the analytic collider model (spec §4.5):
// shapes that can project a point out of penetration, carried alongside a
// world transform. The solver owns a list of Transformed colliders and
// sweeps them over every particle after each step's global solve.
package collider

import "github.com/gekko3d/fastmassspring/linalg"

// Shape is a collidable analytic shape in its own local frame.
type Shape interface {
	// project returns the point p pushed out of penetration, and true,
	// if p penetrates the shape (expressed in the shape's local frame).
	// It returns the point unchanged and false if p is already outside.
	project(p linalg.Vector3) (linalg.Vector3, bool)
}

// Sphere is a collider centered at its transform's translation.
type Sphere struct {
	Radius linalg.Real
}

// project implements Shape for Sphere per spec §4.5: points at or beyond
// the radius are unchanged; points strictly inside are pushed to the
// surface along the outward ray from the center. At the exact center the
// outward direction is undefined; this implementation leaves the point
// unchanged rather than picking an arbitrary direction or producing NaN,
// so the result stays deterministic and callers must not rely on a
// particular tie-break (spec §4.5, §9).
func (s Sphere) project(p linalg.Vector3) (linalg.Vector3, bool) {
	delta := p
	dist := delta.Len()
	if dist >= s.Radius || dist == 0 {
		return p, false
	}
	return delta.Mul(s.Radius / dist), true
}

// Transformed pairs a Shape with the world transform it is placed under.
// Construction is the only place a Shape is wrapped; Project below always
// transforms into and back out of the shape's local frame.
type Transformed struct {
	Shape     Shape
	Transform linalg.Isometry3
}

// NewTransformed builds a Transformed collider at the given rigid
// transform.
func NewTransformed(shape Shape, transform linalg.Isometry3) Transformed {
	return Transformed{Shape: shape, Transform: transform}
}

// Project projects a world-space point out of penetration, returning the
// (possibly unchanged) world-space point.
func (t Transformed) Project(p linalg.Vector3) linalg.Vector3 {
	local := p.Sub(t.Transform.Translation)
	// Transform's rotation is always a unit quaternion (built from
	// QuatIdent or QuatRotate), so its conjugate is its inverse.
	local = t.Transform.Rotation.Conjugate().Rotate(local)
	projected, hit := t.Shape.project(local)
	if !hit {
		return p
	}
	return t.Transform.Rotation.Rotate(projected).Add(t.Transform.Translation)
}
