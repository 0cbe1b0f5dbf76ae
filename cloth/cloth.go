// Package cloth is the mutable particle/spring/attachment container (spec
// §3, §4.1): a flat mass list and flat position/prev-position triples,
// plus the spring and attachment lists that define the constraint
// ordering consumed by the solver package.
package cloth

import (
	"errors"
	"fmt"

	"github.com/gekko3d/fastmassspring/linalg"
)

// ErrInvalidInput is returned when a Cloth is built or mutated with
// mismatched slice lengths, an out-of-range particle index, or a
// non-positive mass or stiffness.
var ErrInvalidInput = errors.New("cloth: invalid input")

// Spring is a Hookean constraint between two distinct particles with a
// rest length (spec §4.2).
type Spring struct {
	A, B       int
	Stiffness  linalg.Real
	RestLength linalg.Real
}

// Attachment is a zero-length spring from a particle to a fixed world
// position (spec §4.2).
type Attachment struct {
	Particle  int
	Target    linalg.Vector3
	Stiffness linalg.Real
}

// Cloth is the particle system: masses, current and previous positions,
// and the constraint lists. Once handed to a solver it is owned
// exclusively by that solver (spec §5); the accessors here are read-only
// except for the raw slices the solver mutates during step().
type Cloth struct {
	masses        []linalg.Real
	positions     []linalg.Vector3
	prevPositions []linalg.Vector3
	springs       []Spring
	attachments   []Attachment
}

// FromSlice builds a Cloth with the given per-particle masses and
// positions, with an empty spring and attachment list and
// prevPositions initialized equal to positions (spec §4.1). positions
// must have exactly one Vector3 per mass.
func FromSlice(masses []linalg.Real, positions []linalg.Vector3) (*Cloth, error) {
	if len(masses) != len(positions) {
		return nil, fmt.Errorf("%w: %d masses but %d positions", ErrInvalidInput, len(masses), len(positions))
	}
	for i, m := range masses {
		if m <= 0 {
			return nil, fmt.Errorf("%w: particle %d has non-positive mass %g", ErrInvalidInput, i, m)
		}
	}
	prev := make([]linalg.Vector3, len(positions))
	copy(prev, positions)
	pos := make([]linalg.Vector3, len(positions))
	copy(pos, positions)
	return &Cloth{
		masses:        append([]linalg.Real(nil), masses...),
		positions:     pos,
		prevPositions: prev,
	}, nil
}

// AddSprings appends springs, preserving order. Must be called before the
// Cloth is handed to a solver, since spring order determines constraint
// indices (spec §3).
func (c *Cloth) AddSprings(springs ...Spring) error {
	for _, s := range springs {
		if s.A == s.B {
			return fmt.Errorf("%w: spring endpoints must be distinct, got %d and %d", ErrInvalidInput, s.A, s.B)
		}
		if s.A < 0 || s.A >= len(c.masses) || s.B < 0 || s.B >= len(c.masses) {
			return fmt.Errorf("%w: spring endpoint out of range [0,%d)", ErrInvalidInput, len(c.masses))
		}
		if s.Stiffness <= 0 {
			return fmt.Errorf("%w: spring stiffness must be positive, got %g", ErrInvalidInput, s.Stiffness)
		}
		if s.RestLength < 0 {
			return fmt.Errorf("%w: spring rest length must be non-negative, got %g", ErrInvalidInput, s.RestLength)
		}
	}
	c.springs = append(c.springs, springs...)
	return nil
}

// AddAttachments appends attachments, preserving order (spec §4.1).
func (c *Cloth) AddAttachments(attachments ...Attachment) error {
	for _, a := range attachments {
		if a.Particle < 0 || a.Particle >= len(c.masses) {
			return fmt.Errorf("%w: attachment particle %d out of range [0,%d)", ErrInvalidInput, a.Particle, len(c.masses))
		}
		if a.Stiffness <= 0 {
			return fmt.Errorf("%w: attachment stiffness must be positive, got %g", ErrInvalidInput, a.Stiffness)
		}
	}
	c.attachments = append(c.attachments, attachments...)
	return nil
}

// NumParticles is the particle count P.
func (c *Cloth) NumParticles() int { return len(c.masses) }

// NumSprings is |S|.
func (c *Cloth) NumSprings() int { return len(c.springs) }

// NumAttachments is |A|.
func (c *Cloth) NumAttachments() int { return len(c.attachments) }

// NumConstraints is |A|+|S|, the size of the constraint index space
// (spec §3).
func (c *Cloth) NumConstraints() int { return len(c.attachments) + len(c.springs) }

// Mass returns the mass of particle i.
func (c *Cloth) Mass(i int) linalg.Real { return c.masses[i] }

// Position returns the current position of particle i.
func (c *Cloth) Position(i int) linalg.Vector3 { return c.positions[i] }

// PrevPosition returns the previous position of particle i.
func (c *Cloth) PrevPosition(i int) linalg.Vector3 { return c.prevPositions[i] }

// Springs returns the spring list in constraint order.
func (c *Cloth) Springs() []Spring { return c.springs }

// Attachments returns the attachment list in constraint order.
func (c *Cloth) Attachments() []Attachment { return c.attachments }

// Positions returns the raw, mutable backing slice of current positions.
// It exists solely for the solver package's step() to write into; callers
// outside the owning solver must treat it as read-only.
func (c *Cloth) Positions() []linalg.Vector3 { return c.positions }

// PrevPositions returns the raw, mutable backing slice of previous
// positions, for the same reason as Positions.
func (c *Cloth) PrevPositions() []linalg.Vector3 { return c.prevPositions }
