// Package clock provides driven.Clock implementations. Production code
// uses Real; tests use Fixed so stamped dates are deterministic.
package clock

import (
	"sync"
	"time"

	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

var (
	_ driven.Clock = Real{}
	_ driven.Clock = (*Fixed)(nil)
)

// Real reads the system clock.
type Real struct{}

// Now returns the current local time.
func (Real) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant until moved.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed returns a clock stopped at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the fixed instant.
func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
