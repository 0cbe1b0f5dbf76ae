package cloth

import (
	"fmt"

	"github.com/gekko3d/fastmassspring/linalg"
	"github.com/gekko3d/fastmassspring/mesh"
)

// MeshBuilder produces a Cloth whose particles are a mesh's vertices and
// whose springs are one per unique mesh edge (spec §4.4).
type MeshBuilder struct {
	Mesh *mesh.Mesh
	// Mass is the total mass distributed evenly over all vertices.
	Mass linalg.Real
	// Stiffness is applied uniformly to every edge spring.
	Stiffness linalg.Real
}

// Build constructs the Cloth.
func (b MeshBuilder) Build() (*Cloth, error) {
	vertices := b.Mesh.Vertices()
	numParticles := len(vertices)
	if numParticles == 0 {
		return nil, fmt.Errorf("%w: mesh has no vertices", ErrInvalidInput)
	}
	if b.Mass <= 0 {
		return nil, fmt.Errorf("%w: mesh total mass must be positive, got %g", ErrInvalidInput, b.Mass)
	}
	if b.Stiffness <= 0 {
		return nil, fmt.Errorf("%w: mesh spring stiffness must be positive, got %g", ErrInvalidInput, b.Stiffness)
	}

	particleMass := b.Mass / linalg.Real(numParticles)
	masses := make([]linalg.Real, numParticles)
	for i := range masses {
		masses[i] = particleMass
	}

	c, err := FromSlice(masses, vertices)
	if err != nil {
		return nil, err
	}

	edges := b.Mesh.Edges()
	springs := make([]Spring, 0, len(edges))
	for _, e := range edges {
		rest := vertices[e.U].Sub(vertices[e.V]).Len()
		springs = append(springs, Spring{A: e.U, B: e.V, Stiffness: b.Stiffness, RestLength: rest})
	}
	if err := c.AddSprings(springs...); err != nil {
		return nil, err
	}
	return c, nil
}
