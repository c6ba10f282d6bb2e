// Package clock holds the waiting helpers shared by the polling loops.
package clock

import (
	"context"
	"math/rand/v2"
	"time"
)

// SleepWithContext blocks for d or until ctx is done, whichever comes first.
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

// Jitter stretches d by a random amount in [0, d*fraction) so that replicas
// polling the same table drift apart.
func Jitter(d time.Duration, fraction float64) time.Duration {
	if d <= 0 || fraction <= 0 {
		return d
	}
	spread := time.Duration(float64(d) * fraction)
	if spread <= 0 {
		return d
	}
	return d + rand.N(spread)
}
