package sim

import (
	"fmt"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/render"
)

// Frame describes one completed frame, as delivered to observers.
type Frame struct {
	Index     int
	Timestamp float64
	Elapsed   float64
	Coor      physics.Vec2
	Vel       physics.Vec2
	Drag      bool
	Contact   physics.Contact
}

type Observer interface {
	OnFrame(f Frame)
}

// Session owns all state of one running simulation: the world constants,
// the captured viewport, the ball, pointer history and frame timing.
//
// A Session is not safe for concurrent use. Hosts must call Post and Frame
// from a single goroutine.
type Session struct {
	World  physics.World
	View   physics.Viewport
	Body   physics.Body
	Mouse  Mouse
	Timing Timing

	queue     []Event
	observers []Observer
	frames    int
}

// NewSession creates a session for a viewport captured once at startup.
// The ball starts at rest in the center of the viewport.
func NewSession(view physics.Viewport) (*Session, error) {
	if !view.Fits(physics.DefaultRadius) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidViewport, view.Width, view.Height)
	}
	return &Session{
		World:     physics.DefaultWorld(),
		View:      view,
		Body:      physics.NewBody(view),
		queue:     make([]Event, 0, 16),
		observers: make([]Observer, 0),
	}, nil
}

func (s *Session) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Post queues ev for the next frame.
func (s *Session) Post(ev Event) { s.queue = append(s.queue, ev) }

func (s *Session) Pending() int { return len(s.queue) }

// Frames returns the number of frames run so far.
func (s *Session) Frames() int { return s.frames }

// Drain applies queued events in arrival order and returns how many ran.
func (s *Session) Drain() int {
	n := len(s.queue)
	for i, ev := range s.queue {
		ev.apply(s)
		s.queue[i] = nil
	}
	s.queue = s.queue[:0]
	return n
}

// Reset puts the ball back at rest in the center and forgets pointer
// history and pending input. Timing and the frame count carry on.
func (s *Session) Reset() {
	s.Body = physics.NewBody(s.View)
	s.Mouse = Mouse{}
	for i := range s.queue {
		s.queue[i] = nil
	}
	s.queue = s.queue[:0]
}

// Frame runs one iteration of the animation loop at timestamp now: it
// applies pending input, redraws surf, steps the ball and updates timing.
func (s *Session) Frame(surf render.Surface, now float64) Frame {
	s.Drain()

	surf.ClearRect(0, 0, s.View.Width, s.View.Height)
	render.Draw(surf, s.Body)

	hit := physics.Move(&s.Body, s.World, s.View)
	s.Timing.Update(now)

	f := Frame{
		Index:     s.frames,
		Timestamp: now,
		Elapsed:   s.Timing.ElapsedSinceLastLoop,
		Coor:      s.Body.Coor,
		Vel:       s.Body.Vel,
		Drag:      s.Body.Drag,
		Contact:   hit,
	}
	s.frames++

	for _, o := range s.observers {
		o.OnFrame(f)
	}
	return f
}
