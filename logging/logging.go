// Package logging provides the one diagnostic capability the ambient
// (non-core) parts of this module need: a debug line that fixedstep can
// emit when it drops catch-up frames. The numerical core never imports
// this package: spec §7 requires that step() and construction failures
// be pure error returns, never log lines.
package logging

import (
	"fmt"
	"log"
	"os"
)

// Logger is kept to exactly the capability a caller in this module
// exercises. fixedstep.Driver is the only consumer, and it only ever
// calls Debugf; grow this interface when a real caller needs more,
// rather than pre-building surface nothing calls.
type Logger interface {
	Debugf(format string, args ...any)
}

// DebugLogger writes Debugf lines through the standard log package,
// tagged with an optional component prefix. enabled is fixed at
// construction — nothing in this module flips it at runtime, so there
// is no setter and no lock to guard one.
type DebugLogger struct {
	enabled bool
	prefix  string
	out     *log.Logger
}

// NewDebugLogger builds a DebugLogger. When enabled is false, Debugf is
// a no-op.
func NewDebugLogger(prefix string, enabled bool) *DebugLogger {
	return &DebugLogger{
		enabled: enabled,
		prefix:  prefix,
		out:     log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds),
	}
}

func (l *DebugLogger) Debugf(format string, args ...any) {
	if !l.enabled {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.prefix == "" {
		l.out.Print("DEBUG: " + msg)
		return
	}
	l.out.Print("[" + l.prefix + "] DEBUG: " + msg)
}
