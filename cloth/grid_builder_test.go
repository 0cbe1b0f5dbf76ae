package cloth

import (
	"testing"

	"github.com/gekko3d/fastmassspring/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBuilderParticleCountAndMass(t *testing.T) {
	b := GridBuilder{Size: 4, Resolution: 3, StructuralStiffness: 80, ShearStiffness: 0.2, Mass: 9, Transform: linalg.IdentityIsometry3()}
	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 9, c.NumParticles())
	for i := 0; i < c.NumParticles(); i++ {
		assert.InDelta(t, 1.0, c.Mass(i), 1e-12)
	}
}

func TestGridBuilderCorners(t *testing.T) {
	b := GridBuilder{Size: 1, Resolution: 4, StructuralStiffness: 1, ShearStiffness: 1, Mass: 1, Transform: linalg.IdentityIsometry3()}
	assert.Equal(t, 0, b.DownLeft())
	assert.Equal(t, 3, b.TopLeft())
	assert.Equal(t, 12, b.DownRight())
	assert.Equal(t, 15, b.TopRight())
}

func TestGridBuilderCornerPositions(t *testing.T) {
	b := GridBuilder{Size: 3, Resolution: 4, StructuralStiffness: 1, ShearStiffness: 1, Mass: 1, Transform: linalg.IdentityIsometry3()}
	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, linalg.Vector3{0, 0, 0}, c.Position(b.DownLeft()))
	assert.Equal(t, linalg.Vector3{0, 3, 0}, c.Position(b.TopLeft()))
	assert.Equal(t, linalg.Vector3{3, 0, 0}, c.Position(b.DownRight()))
	assert.Equal(t, linalg.Vector3{3, 3, 0}, c.Position(b.TopRight()))
}

func TestGridBuilderSpringCounts(t *testing.T) {
	r := 3
	b := GridBuilder{Size: 2, Resolution: r, StructuralStiffness: 80, ShearStiffness: 0.2, Mass: 1, Transform: linalg.IdentityIsometry3()}
	c, err := b.Build()
	require.NoError(t, err)

	// structural: R*(R-1) horizontal + R*(R-1) vertical
	// shear: (R-1)*(R-1) each diagonal direction
	wantStructural := 2 * r * (r - 1)
	wantShear := 2 * (r - 1) * (r - 1)
	assert.Equal(t, wantStructural+wantShear, c.NumSprings())
}

func TestGridBuilderRejectsBadInputs(t *testing.T) {
	base := GridBuilder{Size: 1, Resolution: 3, StructuralStiffness: 1, ShearStiffness: 1, Mass: 1, Transform: linalg.IdentityIsometry3()}

	bad := base
	bad.Resolution = 1
	_, err := bad.Build()
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad = base
	bad.Size = 0
	_, err = bad.Build()
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad = base
	bad.Mass = 0
	_, err = bad.Build()
	assert.ErrorIs(t, err, ErrInvalidInput)
}
