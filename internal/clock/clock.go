package clock

import (
	"context"
	"time"
)

// Interval is the fallback frame period, 1000/60 ms.
const Interval = time.Second / 60

// FrameFunc receives a monotonically non-decreasing timestamp in
// milliseconds.
type FrameFunc func(timestamp float64)

// Scheduler repeatedly invokes a frame function until ctx is done.
type Scheduler interface {
	Run(ctx context.Context, frame FrameFunc) error
}

// Clock is the time source behind Timer. Tests inject a fake.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Alarm
}

// Alarm is a one-shot timer.
type Alarm interface {
	C() <-chan time.Time
	Stop() bool
}

// System is the Clock backed by the runtime's monotonic clock.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) NewTimer(d time.Duration) Alarm { return systemAlarm{time.NewTimer(d)} }

type systemAlarm struct{ t *time.Timer }

func (a systemAlarm) C() <-chan time.Time { return a.t.C }
func (a systemAlarm) Stop() bool          { return a.t.Stop() }

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
