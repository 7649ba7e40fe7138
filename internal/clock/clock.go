// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// Clock reports the current time. Caches and sweepers take it as a dependency so staleness can be tested.
type Clock interface {
	Now() time.Time
}

// Real is the wall clock.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time {
	return time.Now()
}

// SleepWithContext waits for the duration or returns early if the context is canceled.
// Non-positive durations only check the context.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
