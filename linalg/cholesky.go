package linalg

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrNotPositiveDefinite is returned by Factorize when the input matrix
// is not symmetric positive definite.
var ErrNotPositiveDefinite = errors.New("linalg: matrix is not symmetric positive definite")

// Cholesky is a cached factorization A = R^T R of a symmetric
// positive-definite matrix, used to solve A x = b repeatedly by
// triangular back-substitution without refactoring A. This is the
// "linear algebra facade"'s Cholesky component (spec §4.6): computed
// once at solver construction and reused every iteration of every step.
type Cholesky struct {
	chol mat.Cholesky
	dim  int
}

// Factorize computes the Cholesky factorization of a. It reports
// ErrNotPositiveDefinite if a is not symmetric positive definite.
func Factorize(a *mat.SymDense) (*Cholesky, error) {
	c := &Cholesky{dim: a.SymmetricDim()}
	if ok := c.chol.Factorize(a); !ok {
		return nil, ErrNotPositiveDefinite
	}
	return c, nil
}

// Dim returns the dimension of the factored system.
func (c *Cholesky) Dim() int { return c.dim }

// SolveVecTo solves A x = b via two triangular back-substitutions,
// writing the result into dst. dst must not alias b.
func (c *Cholesky) SolveVecTo(dst *mat.VecDense, b mat.Vector) error {
	return c.chol.SolveVecTo(dst, b)
}
