package linalg

import "gonum.org/v1/gonum/mat"

// SymSystem is a dense symmetric matrix of size 3n x 3n, built by
// accumulating scaled-identity 3x3 blocks at particle-pair positions. It
// backs the system matrix A = M + h^2*L of the fast mass-spring assembly
// (spec §4.6), into which the mass and h^2-scaled Laplacian blocks are
// accumulated directly.
type SymSystem struct {
	n3  int
	sym *mat.SymDense
}

// NewSymSystem allocates a zeroed 3n x 3n symmetric system for n
// particles.
func NewSymSystem(numParticles int) *SymSystem {
	n3 := numParticles * 3
	return &SymSystem{n3: n3, sym: mat.NewSymDense(n3, nil)}
}

// Dim returns 3 * numParticles.
func (s *SymSystem) Dim() int { return s.n3 }

// Dense exposes the underlying gonum matrix for factorization or
// combination with another SymSystem.
func (s *SymSystem) Dense() *mat.SymDense { return s.sym }

// AddScaledIdentityBlock adds k*I3 to the 3x3 block at block-row i,
// block-column j, where i and j are particle indices (not coordinate
// indices). Used for both diagonal blocks (i == j) and the off-diagonal
// -k blocks a spring contributes between its two endpoints.
func (s *SymSystem) AddScaledIdentityBlock(i, j int, k Real) {
	ri, cj := 3*i, 3*j
	for a := 0; a < 3; a++ {
		s.sym.SetSym(ri+a, cj+a, s.sym.At(ri+a, cj+a)+k)
	}
}

// RectSystem is a dense rectangular matrix of size 3p x 3c, used for the
// Jacobian-like matrix J (p particles, c constraints).
type RectSystem struct {
	rows, cols int
	dense      *mat.Dense
}

// NewRectSystem allocates a zeroed 3p x 3c system.
func NewRectSystem(numParticles, numConstraints int) *RectSystem {
	rows, cols := numParticles*3, numConstraints*3
	return &RectSystem{rows: rows, cols: cols, dense: mat.NewDense(rows, cols, nil)}
}

// Dense exposes the underlying gonum matrix.
func (r *RectSystem) Dense() *mat.Dense { return r.dense }

// SetScaledIdentityBlock writes k*I3 into the 3x3 block at block-row
// particleIdx, block-column constraintIdx. Each constraint owns its
// column exclusively, so this sets rather than accumulates.
func (r *RectSystem) SetScaledIdentityBlock(particleIdx, constraintIdx int, k Real) {
	ri, cj := 3*particleIdx, 3*constraintIdx
	for a := 0; a < 3; a++ {
		r.dense.Set(ri+a, cj+a, k)
	}
}

// Scale multiplies every entry in place by c.
func (r *RectSystem) Scale(c Real) {
	r.dense.Scale(c, r.dense)
}
