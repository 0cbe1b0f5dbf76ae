// Package mesh is the triangle-mesh collaborator (spec §4.3): it holds
// vertices and triangle indices and can enumerate the mesh's unique
// undirected edges. It has no dependency on the cloth or solver packages
// and is consumed by cloth.MeshBuilder through its narrow Vertices/Edges
// contract.
package mesh

import "github.com/gekko3d/fastmassspring/linalg"

// Edge is an undirected edge between two distinct vertex indices. Edges
// built by NewEdge store the smaller index first, so that
// NewEdge(0, 1) == NewEdge(1, 0).
type Edge struct {
	U, V int
}

// NewEdge normalizes (a, b) into an Edge with U <= V.
func NewEdge(a, b int) Edge {
	if a < b {
		return Edge{U: a, V: b}
	}
	return Edge{U: b, V: a}
}

// Mesh is an indexed triangle mesh: a flat vertex list and a flat
// triangle index list (three indices per triangle).
type Mesh struct {
	vertices []linalg.Vector3
	indices  []int
}

// New builds a Mesh from vertices and a flat triangle index list. len(indices)
// must be a multiple of 3.
func New(vertices []linalg.Vector3, indices []int) *Mesh {
	return &Mesh{vertices: vertices, indices: indices}
}

// Vertices returns the mesh's vertex positions.
func (m *Mesh) Vertices() []linalg.Vector3 { return m.vertices }

// Indices returns the flat per-triangle vertex index list.
func (m *Mesh) Indices() []int { return m.indices }

// Edges returns the mesh's unique undirected edges, each vertex pair
// appearing once regardless of how many triangles share it, in first-seen
// order.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]struct{})
	var edges []Edge
	for t := 0; t+3 <= len(m.indices); t += 3 {
		i0, i1, i2 := m.indices[t], m.indices[t+1], m.indices[t+2]
		for _, e := range [3]Edge{NewEdge(i0, i1), NewEdge(i1, i2), NewEdge(i2, i0)} {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}
