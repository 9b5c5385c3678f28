package sim

import "fmt"

// Event is a pointer intent queued by a host between frames.
type Event interface {
	apply(s *Session)
	String() string
}

type PointerMoved struct{ X, Y float64 }

type PointerPressed struct{ X, Y float64 }

type PointerReleased struct{}

func (e PointerMoved) apply(s *Session)    { s.PointerMove(e.X, e.Y) }
func (e PointerPressed) apply(s *Session)  { s.PointerPress(e.X, e.Y) }
func (e PointerReleased) apply(s *Session) { s.PointerRelease() }

func (e PointerMoved) String() string   { return fmt.Sprintf("move(%.1f,%.1f)", e.X, e.Y) }
func (e PointerPressed) String() string { return fmt.Sprintf("press(%.1f,%.1f)", e.X, e.Y) }
func (PointerReleased) String() string  { return "release" }

// ParseEvent builds an event from its scripted form. kind is one of
// "move", "press" or "release".
func ParseEvent(kind string, x, y float64) (Event, error) {
	switch kind {
	case "move":
		return PointerMoved{X: x, Y: y}, nil
	case "press":
		return PointerPressed{X: x, Y: y}, nil
	case "release":
		return PointerReleased{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, kind)
	}
}
