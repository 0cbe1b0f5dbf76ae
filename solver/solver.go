// Package solver is the FastMassSpring solver (spec §4.6): assembly of
// the mass matrix M, the Laplacian-like matrix L and the Jacobian-like
// matrix J, Cholesky pre-factorization of M+h^2*L, and the per-step
// alternating local-projection / global-solve iteration, damping,
// external forces and collision resolution.
//
// The solver is deliberately silent: per spec §7 nothing here logs,
// retries or swallows an error, so this package has no dependency on
// the logging package.
package solver

import (
	"fmt"

	"github.com/gekko3d/fastmassspring/cloth"
	"github.com/gekko3d/fastmassspring/collider"
	"github.com/gekko3d/fastmassspring/linalg"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

// Solver is a fast mass-spring / projective-dynamics solver for one
// Cloth instance. It owns the Cloth exclusively for its lifetime (spec
// §5); the Cloth's positions are mutated only by Step.
type Solver struct {
	id    string
	cloth *cloth.Cloth

	h, h2 linalg.Real

	masses []linalg.Real      // cached per-particle mass, M's diagonal
	h2J    *linalg.RectSystem // cached h^2*J, nil when there are no constraints
	chol   *linalg.Cholesky

	numIterations int
	damping       linalg.Real
	impulseTerm   []linalg.Vector3 // f_ext_h2, per particle
	colliders     []collider.Transformed

	// scratch buffers, sized once at construction and reused by every
	// Step call (spec §5: no allocation required once scratch is sized).
	inertial     []linalg.Vector3
	prevSnapshot []linalg.Vector3
	current      []linalg.Vector3
	constraintD  []linalg.Vector3
	bFlat        *mat.VecDense
	dFlat        *mat.VecDense
	xNewFlat     *mat.VecDense
}

// New assembles a Solver for cloth with the given fixed time step (spec
// §4.6). It factors M+h^2*L once; construction is the only place this
// can fail.
func New(c *cloth.Cloth, timeStep linalg.Real) (*Solver, error) {
	if timeStep <= 0 {
		return nil, fmt.Errorf("%w: time step must be positive, got %g", ErrInvalidInput, timeStep)
	}

	p := c.NumParticles()
	numConstraints := c.NumConstraints()
	h2 := timeStep * timeStep

	sys := linalg.NewSymSystem(p)
	for _, a := range c.Attachments() {
		sys.AddScaledIdentityBlock(a.Particle, a.Particle, h2*a.Stiffness)
	}
	for _, sp := range c.Springs() {
		sys.AddScaledIdentityBlock(sp.A, sp.A, h2*sp.Stiffness)
		sys.AddScaledIdentityBlock(sp.B, sp.B, h2*sp.Stiffness)
		sys.AddScaledIdentityBlock(sp.A, sp.B, -h2*sp.Stiffness)
	}
	masses := make([]linalg.Real, p)
	for i := 0; i < p; i++ {
		masses[i] = c.Mass(i)
		sys.AddScaledIdentityBlock(i, i, masses[i])
	}

	var h2J *linalg.RectSystem
	if numConstraints > 0 {
		h2J = linalg.NewRectSystem(p, numConstraints)
		idx := 0
		for _, a := range c.Attachments() {
			h2J.SetScaledIdentityBlock(a.Particle, idx, h2*a.Stiffness)
			idx++
		}
		for _, sp := range c.Springs() {
			h2J.SetScaledIdentityBlock(sp.A, idx, h2*sp.Stiffness)
			h2J.SetScaledIdentityBlock(sp.B, idx, -h2*sp.Stiffness)
			idx++
		}
	}

	chol, err := linalg.Factorize(sys.Dense())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}

	s := &Solver{
		id:            uuid.NewString(),
		cloth:         c,
		h:             timeStep,
		h2:            h2,
		masses:        masses,
		h2J:           h2J,
		chol:          chol,
		numIterations: 2,
		damping:       1.0,
		impulseTerm:   make([]linalg.Vector3, p),
		inertial:      make([]linalg.Vector3, p),
		prevSnapshot:  make([]linalg.Vector3, p),
		current:       make([]linalg.Vector3, p),
		constraintD:   make([]linalg.Vector3, numConstraints),
		bFlat:         mat.NewVecDense(3*p, nil),
		xNewFlat:      mat.NewVecDense(3*p, nil),
	}
	if numConstraints > 0 {
		s.dFlat = mat.NewVecDense(3*numConstraints, nil)
	}
	return s, nil
}

// ID is a uuid tagging this solver instance, for diagnostic correlation
// only; it has no bearing on simulation results.
func (s *Solver) ID() string { return s.id }

// Cloth returns the solver's owned Cloth, mutated only by Step.
func (s *Solver) Cloth() *cloth.Cloth { return s.cloth }

// TimeStep returns the fixed time step h this solver was constructed
// with.
func (s *Solver) TimeStep() linalg.Real { return s.h }

// SetNumIterations sets the number of local/global iterations performed
// per Step (default 2). n must be at least 1.
func (s *Solver) SetNumIterations(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: iteration count must be >= 1, got %d", ErrInvalidInput, n)
	}
	s.numIterations = n
	return nil
}

// SetDamping sets the inertial-prediction damping weight d in [0,1]
// (default 1.0, spec §9): 1.0 carries full momentum into the inertial
// prediction, 0.0 carries none.
func (s *Solver) SetDamping(d linalg.Real) error {
	if d < 0 || d > 1 {
		return fmt.Errorf("%w: damping must be in [0,1], got %g", ErrInvalidInput, d)
	}
	s.damping = d
	return nil
}

// SetGravity sets the external impulse term to the per-particle vector
// m_i*g*h^2 (spec §4.6). It replaces any previously set external force.
func (s *Solver) SetGravity(g linalg.Vector3) {
	scale := s.h2
	for i, m := range s.masses {
		s.impulseTerm[i] = g.Mul(m * scale)
	}
}

// AddCollider registers an analytic collider under the given world
// transform. Colliders are swept in insertion order during Step's
// collision pass (spec §4.6, §5).
func (s *Solver) AddCollider(shape collider.Shape, transform linalg.Isometry3) {
	s.colliders = append(s.colliders, collider.NewTransformed(shape, transform))
}

// Step advances the simulation by one fixed tick h (spec §4.6):
// inertial term, snapshot, N x (local projection, global solve), then
// collision resolution. It cannot fail.
func (s *Solver) Step() {
	positions := s.cloth.Positions()
	prevPositions := s.cloth.PrevPositions()

	damp := s.damping
	for i, m := range s.masses {
		blended := positions[i].Mul(1 + damp).Sub(prevPositions[i].Mul(damp))
		s.inertial[i] = blended.Mul(m).Add(s.impulseTerm[i])
	}

	copy(s.prevSnapshot, positions)
	copy(s.current, positions)

	for iter := 0; iter < s.numIterations; iter++ {
		s.localStep()
		s.globalStep()
	}

	for _, col := range s.colliders {
		for i := range s.current {
			s.current[i] = col.Project(s.current[i])
		}
	}

	copy(positions, s.current)
	copy(prevPositions, s.prevSnapshot)
}

// localStep fills constraintD constraint-by-constraint from the current
// iterate (spec §4.6 step 3a). A spring whose endpoints coincide leaves
// its slot unchanged rather than dividing by zero (spec §9).
func (s *Solver) localStep() {
	idx := 0
	for _, a := range s.cloth.Attachments() {
		s.constraintD[idx] = a.Target
		idx++
	}
	for _, sp := range s.cloth.Springs() {
		delta := s.current[sp.A].Sub(s.current[sp.B])
		if norm := delta.Len(); norm > 0 {
			s.constraintD[idx] = delta.Mul(sp.RestLength / norm)
		}
		idx++
	}
}

// globalStep solves A*x_new = h^2*J*d + inertial via the cached Cholesky
// factor and writes the result into current (spec §4.6 step 3b).
func (s *Solver) globalStep() {
	if s.h2J != nil {
		for i, v := range s.constraintD {
			s.dFlat.SetVec(3*i, v.X())
			s.dFlat.SetVec(3*i+1, v.Y())
			s.dFlat.SetVec(3*i+2, v.Z())
		}
		s.bFlat.MulVec(s.h2J.Dense(), s.dFlat)
		for i, v := range s.inertial {
			s.bFlat.SetVec(3*i, s.bFlat.AtVec(3*i)+v.X())
			s.bFlat.SetVec(3*i+1, s.bFlat.AtVec(3*i+1)+v.Y())
			s.bFlat.SetVec(3*i+2, s.bFlat.AtVec(3*i+2)+v.Z())
		}
	} else {
		for i, v := range s.inertial {
			s.bFlat.SetVec(3*i, v.X())
			s.bFlat.SetVec(3*i+1, v.Y())
			s.bFlat.SetVec(3*i+2, v.Z())
		}
	}

	if err := s.chol.SolveVecTo(s.xNewFlat, s.bFlat); err != nil {
		// The factor was built from this same solver's fixed A and
		// never refreshed; a solve against a same-sized right-hand
		// side cannot fail. If it does, the assembly invariant has
		// been violated by a programming error, not a runtime input.
		panic(fmt.Sprintf("solver: cholesky solve failed on a fixed factorization: %v", err))
	}

	for i := range s.current {
		s.current[i] = linalg.Vector3{
			s.xNewFlat.AtVec(3 * i),
			s.xNewFlat.AtVec(3*i + 1),
			s.xNewFlat.AtVec(3*i + 2),
		}
	}
}
