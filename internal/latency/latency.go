// Package latency simulates network round trips with clock-driven timers.
package latency

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Schedule runs fn once d has elapsed on clock and delivers its result on the
// returned channel. The channel is buffered, so fn completes even when nobody
// reads the result.
func Schedule[T any](clock clockwork.Clock, d time.Duration, fn func() T) <-chan T {
	done := make(chan T, 1)
	clock.AfterFunc(d, func() {
		done <- fn()
	})
	return done
}

// Resolve schedules fn like Schedule and waits for its result. If ctx ends
// first, Resolve returns ctx.Err(); fn still runs when the timer fires.
func Resolve[T any](ctx context.Context, clock clockwork.Clock, d time.Duration, fn func() T) (T, error) {
	select {
	case v := <-Schedule(clock, d, fn):
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
