package latency

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWaitsForClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type result struct {
		value string
		err   error
	}
	out := make(chan result, 1)
	go func() {
		v, err := Resolve(ctx, clock, time.Second, func() string { return "done" })
		out <- result{v, err}
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	select {
	case <-out:
		t.Fatal("resolved before the delay elapsed")
	default:
	}

	clock.Advance(time.Second)

	select {
	case r := <-out:
		require.NoError(t, r.err)
		assert.Equal(t, "done", r.value)
	case <-ctx.Done():
		t.Fatal("timed out waiting for resolution")
	}
}

func TestResolveCancelledStillFires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var fired atomic.Bool

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Resolve(ctx, clock, time.Second, func() int {
		fired.Store(true)
		return 1
	})
	assert.ErrorIs(t, err, context.Canceled)

	clock.Advance(time.Second)
	assert.Eventually(t, fired.Load, time.Second, 5*time.Millisecond)
}

func TestScheduleRealClockZeroDelay(t *testing.T) {
	ch := Schedule(clockwork.NewRealClock(), 0, func() int { return 42 })

	select {
	case v := <-ch:
		assert.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("zero delay did not fire")
	}
}
