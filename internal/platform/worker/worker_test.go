package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerLoopRunOnStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var ticks atomic.Int32

	done := make(chan error, 1)

	go func() {
		done <- TickerLoop(ctx, TickerConfig{
			Name:       "test",
			Interval:   time.Hour,
			RunOnStart: true,
			OnTick: func(_ context.Context) {
				ticks.Add(1)
			},
		})
	}()

	assert.Eventually(t, func() bool {
		return ticks.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTickerLoopTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks atomic.Int32

	done := make(chan error, 1)

	go func() {
		done <- TickerLoop(ctx, TickerConfig{
			Name:     "test",
			Interval: time.Millisecond,
			OnTick: func(_ context.Context) {
				ticks.Add(1)
			},
		})
	}()

	assert.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, time.Millisecond)

	cancel()
	<-done
}
