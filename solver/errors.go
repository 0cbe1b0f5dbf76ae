package solver

import "errors"

// ErrInvalidInput is returned when solver construction or a setter is
// given a non-positive time step, an out-of-range iteration count, or a
// damping value outside [0,1] (spec §7).
var ErrInvalidInput = errors.New("solver: invalid input")

// ErrSingularSystem is returned by New when the assembled system matrix
// M + h^2*L fails to factor (spec §7). This should not occur for a
// valid Cloth; it wraps the underlying linalg.ErrNotPositiveDefinite.
var ErrSingularSystem = errors.New("solver: singular system matrix")
