package gui

import "github.com/san-kum/bounce/internal/sim"

// pointerState converts polled mouse state into discrete pointer events.
type pointerState struct {
	x, y   float64
	polled bool
}

// poll reports a move when the cursor changed position since the last poll,
// followed by any press or release seen this frame.
func (p *pointerState) poll(x, y float64, pressed, released bool) []sim.Event {
	var events []sim.Event
	if !p.polled || x != p.x || y != p.y {
		events = append(events, sim.PointerMoved{X: x, Y: y})
	}
	p.x, p.y, p.polled = x, y, true

	if pressed {
		events = append(events, sim.PointerPressed{X: x, Y: y})
	}
	if released {
		events = append(events, sim.PointerReleased{})
	}
	return events
}
