package sim

// Timing is the per-session frame bookkeeping. All values are in the
// timestamp unit supplied by the scheduler (milliseconds for every scheduler
// in this module).
type Timing struct {
	StartingTime         float64
	LastTime             float64
	ElapsedSinceLastLoop float64
	started              bool
}

// Update records the frame timestamp now.
//
// The first call latches StartingTime and seeds LastTime with the time since
// start, which is zero, so the first ElapsedSinceLastLoop equals the absolute
// timestamp. Later calls yield the true delta between frames.
func (t *Timing) Update(now float64) {
	if !t.started {
		t.StartingTime = now
		t.LastTime = now - t.StartingTime
		t.started = true
	}
	t.ElapsedSinceLastLoop = now - t.LastTime
	t.LastTime = now
}

func (t *Timing) Started() bool { return t.started }

// SinceStart returns the time between the first frame and the last one.
func (t *Timing) SinceStart() float64 {
	if !t.started {
		return 0
	}
	return t.LastTime - t.StartingTime
}
