package cloth

import (
	"testing"

	"github.com/gekko3d/fastmassspring/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoParticleCloth(t *testing.T) *Cloth {
	t.Helper()
	c, err := FromSlice(
		[]linalg.Real{1, 1},
		[]linalg.Vector3{{0, 0, 0}, {1, 0, 0}},
	)
	require.NoError(t, err)
	return c
}

func TestFromSliceInitializesPrevEqualToCurrent(t *testing.T) {
	c := twoParticleCloth(t)
	assert.Equal(t, c.Position(0), c.PrevPosition(0))
	assert.Equal(t, c.Position(1), c.PrevPosition(1))
	assert.Equal(t, 2, c.NumParticles())
}

func TestFromSliceRejectsMismatchedLengths(t *testing.T) {
	_, err := FromSlice([]linalg.Real{1, 1, 1}, []linalg.Vector3{{0, 0, 0}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFromSliceRejectsNonPositiveMass(t *testing.T) {
	_, err := FromSlice([]linalg.Real{1, 0}, []linalg.Vector3{{0, 0, 0}, {1, 0, 0}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddSpringsAppendsAndValidates(t *testing.T) {
	c := twoParticleCloth(t)
	require.NoError(t, c.AddSprings(Spring{A: 0, B: 1, Stiffness: 100, RestLength: 1}))
	assert.Equal(t, 1, c.NumSprings())
	assert.Equal(t, 1, c.NumConstraints())

	assert.ErrorIs(t, c.AddSprings(Spring{A: 0, B: 0, Stiffness: 1, RestLength: 0}), ErrInvalidInput)
	assert.ErrorIs(t, c.AddSprings(Spring{A: 0, B: 5, Stiffness: 1, RestLength: 0}), ErrInvalidInput)
	assert.ErrorIs(t, c.AddSprings(Spring{A: 0, B: 1, Stiffness: 0, RestLength: 0}), ErrInvalidInput)
}

func TestAddAttachmentsAppendsAndValidates(t *testing.T) {
	c := twoParticleCloth(t)
	require.NoError(t, c.AddAttachments(Attachment{Particle: 0, Target: linalg.Vector3{0, 0, 0}, Stiffness: 10}))
	assert.Equal(t, 1, c.NumAttachments())
	assert.Equal(t, 1, c.NumConstraints())

	assert.ErrorIs(t, c.AddAttachments(Attachment{Particle: 9, Stiffness: 10}), ErrInvalidInput)
	assert.ErrorIs(t, c.AddAttachments(Attachment{Particle: 0, Stiffness: 0}), ErrInvalidInput)
}

func TestConstraintCountCombinesAttachmentsAndSprings(t *testing.T) {
	c := twoParticleCloth(t)
	require.NoError(t, c.AddSprings(Spring{A: 0, B: 1, Stiffness: 100, RestLength: 1}))
	require.NoError(t, c.AddAttachments(Attachment{Particle: 0, Stiffness: 10}))
	assert.Equal(t, 2, c.NumConstraints())
	assert.Equal(t, 1, len(c.Attachments()))
	assert.Equal(t, 1, len(c.Springs()))
}

func TestPositionsSliceAliasesBackingStore(t *testing.T) {
	c := twoParticleCloth(t)
	c.Positions()[0] = linalg.Vector3{9, 9, 9}
	assert.Equal(t, linalg.Vector3{9, 9, 9}, c.Position(0))
}
