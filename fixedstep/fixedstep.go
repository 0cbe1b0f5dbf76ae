// Package fixedstep converts a free-running wall clock into a sequence
// of fixed simulation ticks (spec §4.7): a small state machine that
// bounds catch-up per call by max_frames, so a slow frame cannot make a
// single call emit an unbounded number of ticks.
package fixedstep

import "github.com/gekko3d/fastmassspring/logging"

// Driver is the fixed-step state machine of spec §4.7.
type Driver struct {
	step       float64
	lastTime   float64
	firstFrame bool
	log        logging.Logger
}

// New builds a Driver with the given fixed tick size. stepSize must be
// positive; callers are expected to validate this upstream, mirroring
// the reference implementation's lack of a constructor-level check.
func New(stepSize float64) *Driver {
	return &Driver{step: stepSize, firstFrame: true}
}

// SetLogger attaches a logger used to report dropped catch-up frames. A
// nil logger (the default) disables this diagnostic; the driver's
// control flow never depends on it.
func (d *Driver) SetLogger(log logging.Logger) {
	d.log = log
}

// Advance produces up to maxFrames tick timestamps that have elapsed
// since the last call, given the current wall-clock time (spec §4.7):
//
//   - On the very first call, it consumes one tick at currentTime and
//     remembers it as the last emitted time.
//   - On every later call, it emits last+step, last+2*step, ... as long
//     as currentTime-last >= step and fewer than maxFrames ticks have
//     been emitted this call.
//
// Ticks beyond maxFrames are not emitted by this call, and the driver
// keeps no separate count of them: the next call measures lag from the
// last tick actually emitted, not from currentTime, so remaining lag is
// worked off over later calls at most maxFrames ticks at a time.
func (d *Driver) Advance(currentTime float64, maxFrames int) []float64 {
	var ticks []float64

	for len(ticks) < maxFrames {
		if d.firstFrame {
			d.firstFrame = false
			d.lastTime = currentTime
			ticks = append(ticks, currentTime)
			continue
		}
		delta := currentTime - d.lastTime
		if delta < d.step {
			break
		}
		d.lastTime += d.step
		ticks = append(ticks, d.lastTime)
	}

	if len(ticks) == maxFrames && currentTime-d.lastTime >= d.step && d.log != nil {
		d.log.Debugf("fixedstep: dropped catch-up frames, %.6g s of lag remaining", currentTime-d.lastTime)
	}

	return ticks
}
