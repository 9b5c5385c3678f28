package sim

import (
	"fmt"
	"sort"
)

type scheduled struct {
	frame int
	ev    Event
}

// Script is pointer input scheduled by frame index, for headless runs.
type Script struct {
	frames int
	events []scheduled
	next   int
}

// NewScript creates an empty script for a run of the given length.
func NewScript(frames int) *Script {
	return &Script{frames: frames}
}

// Add schedules ev to be posted right before frame runs. Events for the same
// frame keep the order they were added in.
func (sc *Script) Add(frame int, ev Event) error {
	if frame < 0 || frame >= sc.frames {
		return fmt.Errorf("%w: frame %d not in [0,%d)", ErrEventOutOfRange, frame, sc.frames)
	}
	sc.events = append(sc.events, scheduled{frame: frame, ev: ev})
	sort.SliceStable(sc.events, func(i, j int) bool {
		return sc.events[i].frame < sc.events[j].frame
	})
	return nil
}

func (sc *Script) Len() int { return len(sc.events) }

// Feed posts every event due at the session's current frame.
func (sc *Script) Feed(s *Session) int {
	n := 0
	for sc.next < len(sc.events) && sc.events[sc.next].frame <= s.Frames() {
		s.Post(sc.events[sc.next].ev)
		sc.next++
		n++
	}
	return n
}
