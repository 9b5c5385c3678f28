package clock

import (
	"context"
	"time"
)

// Timer is the fixed-rate fallback scheduler. After every frame it arms a
// fresh one-shot timer, so a slow frame delays the next one instead of
// queueing ticks.
type Timer struct {
	Interval time.Duration
	Clock    Clock
}

func NewTimer() *Timer {
	return &Timer{Interval: Interval, Clock: System}
}

// Run calls frame on the calling goroutine with the milliseconds elapsed
// since Run started. It returns ctx.Err() once ctx is done.
func (t *Timer) Run(ctx context.Context, frame FrameFunc) error {
	c := t.Clock
	if c == nil {
		c = System
	}
	interval := t.Interval
	if interval <= 0 {
		interval = Interval
	}

	start := c.Now()
	last := 0.0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		alarm := c.NewTimer(interval)
		select {
		case <-ctx.Done():
			alarm.Stop()
			return ctx.Err()
		case <-alarm.C():
		}

		ts := millis(c.Now().Sub(start))
		if ts < last {
			ts = last
		}
		last = ts
		frame(ts)
	}
}
