package cloth

import (
	"fmt"

	"github.com/gekko3d/fastmassspring/linalg"
)

// GridBuilder produces a Cloth laid out as a regular R x R grid of
// particles in the local XY plane (z=0), then placed by a rigid
// transform, with structural and shear springs (spec §4.4).
type GridBuilder struct {
	// Size is the side length of the grid, in world units, before Transform.
	Size linalg.Real
	// Resolution is the number of particles per side, R >= 2.
	Resolution int
	// StructuralStiffness is k_s, applied to axis-aligned neighbor springs.
	StructuralStiffness linalg.Real
	// ShearStiffness is k_h, applied to diagonal neighbor springs.
	ShearStiffness linalg.Real
	// Mass is the total mass distributed evenly over all R*R particles.
	Mass linalg.Real
	// Transform places the local-frame grid into world space.
	Transform linalg.Isometry3
}

// index maps grid coordinates (i,j), i,j in [0,R), to a flat particle
// index. i grows along the local X axis, j along local Y, so that
// DownLeft/TopLeft/DownRight/TopRight below match spec §4.4's corner
// naming.
func (b GridBuilder) index(i, j int) int { return i*b.Resolution + j }

// DownLeft, TopLeft, DownRight and TopRight return the four corner
// particle indices of the built grid (spec §4.4).
func (b GridBuilder) DownLeft() int  { return b.index(0, 0) }
func (b GridBuilder) TopLeft() int   { return b.index(0, b.Resolution-1) }
func (b GridBuilder) DownRight() int { return b.index(b.Resolution-1, 0) }
func (b GridBuilder) TopRight() int  { return b.index(b.Resolution-1, b.Resolution-1) }

// Build constructs the Cloth.
func (b GridBuilder) Build() (*Cloth, error) {
	r := b.Resolution
	if r < 2 {
		return nil, fmt.Errorf("%w: grid resolution must be >= 2, got %d", ErrInvalidInput, r)
	}
	if b.Size <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %g", ErrInvalidInput, b.Size)
	}
	if b.Mass <= 0 {
		return nil, fmt.Errorf("%w: grid total mass must be positive, got %g", ErrInvalidInput, b.Mass)
	}

	numParticles := r * r
	step := b.Size / linalg.Real(r-1)
	particleMass := b.Mass / linalg.Real(numParticles)

	masses := make([]linalg.Real, numParticles)
	positions := make([]linalg.Vector3, numParticles)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			local := linalg.Vector3{linalg.Real(i) * step, linalg.Real(j) * step, 0}
			positions[b.index(i, j)] = b.Transform.Apply(local)
			masses[b.index(i, j)] = particleMass
		}
	}

	c, err := FromSlice(masses, positions)
	if err != nil {
		return nil, err
	}

	var springs []Spring
	addSpring := func(p0, p1 int, k linalg.Real) {
		rest := positions[p0].Sub(positions[p1]).Len()
		springs = append(springs, Spring{A: p0, B: p1, Stiffness: k, RestLength: rest})
	}
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			if i+1 < r {
				addSpring(b.index(i, j), b.index(i+1, j), b.StructuralStiffness)
			}
			if j+1 < r {
				addSpring(b.index(i, j), b.index(i, j+1), b.StructuralStiffness)
			}
			if i+1 < r && j+1 < r {
				addSpring(b.index(i, j), b.index(i+1, j+1), b.ShearStiffness)
			}
			if i+1 < r && j-1 >= 0 {
				addSpring(b.index(i, j), b.index(i+1, j-1), b.ShearStiffness)
			}
		}
	}
	if err := c.AddSprings(springs...); err != nil {
		return nil, err
	}
	return c, nil
}
