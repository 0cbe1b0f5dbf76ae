package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestIsometry3Identity(t *testing.T) {
	id := IdentityIsometry3()
	p := Vector3{1, 2, 3}
	assert.Equal(t, p, id.Apply(p))
}

func TestSymSystemDiagonalAccumulates(t *testing.T) {
	sys := NewSymSystem(2)
	sys.AddScaledIdentityBlock(0, 0, 3)
	sys.AddScaledIdentityBlock(0, 0, 2)
	sys.AddScaledIdentityBlock(1, 1, 5)
	for a := 0; a < 3; a++ {
		assert.Equal(t, Real(5), sys.Dense().At(a, a))
		assert.Equal(t, Real(5), sys.Dense().At(3+a, 3+a))
	}
}

func TestSymSystemOffDiagonalMirrors(t *testing.T) {
	sys := NewSymSystem(2)
	sys.AddScaledIdentityBlock(0, 1, -4)
	for a := 0; a < 3; a++ {
		assert.Equal(t, Real(-4), sys.Dense().At(a, 3+a))
		assert.Equal(t, Real(-4), sys.Dense().At(3+a, a))
	}
}

func TestRectSystemSetsBlocks(t *testing.T) {
	r := NewRectSystem(2, 1)
	r.SetScaledIdentityBlock(1, 0, 7)
	for a := 0; a < 3; a++ {
		assert.Equal(t, Real(7), r.Dense().At(3+a, a))
		assert.Equal(t, Real(0), r.Dense().At(a, a))
	}
	r.Scale(2)
	assert.Equal(t, Real(14), r.Dense().At(3, 0))
}

func TestFactorizeAndSolveRecoversKnownSolution(t *testing.T) {
	sys := NewSymSystem(1)
	sys.AddScaledIdentityBlock(0, 0, 4) // A = 4*I3
	chol, err := Factorize(sys.Dense())
	require.NoError(t, err)

	b := mat.NewVecDense(3, []float64{4, 8, 12})
	var x mat.VecDense
	require.NoError(t, chol.SolveVecTo(&x, b))

	assert.InDelta(t, 1.0, x.AtVec(0), 1e-9)
	assert.InDelta(t, 2.0, x.AtVec(1), 1e-9)
	assert.InDelta(t, 3.0, x.AtVec(2), 1e-9)
}

func TestFactorizeRejectsNonPositiveDefinite(t *testing.T) {
	sym := mat.NewSymDense(2, []float64{1, 2, 2, 1}) // eigenvalues 3, -1
	_, err := Factorize(sym)
	assert.ErrorIs(t, err, ErrNotPositiveDefinite)
}
