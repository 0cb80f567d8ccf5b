package driven

import "time"

// Clock supplies the current time. Tests substitute a fixed clock so
// stamped dates are deterministic.
type Clock interface {
	Now() time.Time
}
