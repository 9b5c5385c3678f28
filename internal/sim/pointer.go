package sim

import (
	"math"

	"github.com/san-kum/bounce/internal/physics"
)

// PointerMove handles a pointer move at surface coordinates (x, y),
// regardless of button state. While a drag is active the ball follows the
// pointer, offset by the grab point.
//
// The throw velocity is the displacement since the previous move divided by
// the last frame's elapsed time. When that time is not positive the previous
// estimate is kept.
func (s *Session) PointerMove(x, y float64) {
	m := &s.Mouse
	m.Move = physics.Vec2{X: x, Y: y}
	m.StartPosition = physics.Vec2{X: x, Y: y}

	if m.IsDown {
		s.Body.Coor = physics.Vec2{X: x - m.LastDown.X, Y: y - m.LastDown.Y}
	}

	if t := s.Timing.ElapsedSinceLastLoop; t > 0 {
		d := m.StartPosition.Sub(m.EndPosition)
		m.Vel = physics.Vec2{
			X: math.Floor(d.X / t * 10),
			Y: math.Floor(d.Y / t * 10),
		}
	}

	m.EndPosition = m.StartPosition
}

// PointerPress starts a drag when (x, y) lands inside the ball.
func (s *Session) PointerPress(x, y float64) {
	p := physics.Vec2{X: x, Y: y}
	s.Mouse.Down = p

	if !s.Body.Contains(p) {
		return
	}

	s.Mouse.LastDown = p.Sub(s.Body.Coor)
	s.Mouse.IsDown = true
	s.Body.Vel = physics.Vec2{}
	s.Body.Drag = true
}

// PointerRelease ends any drag and throws the ball with the last pointer
// velocity.
func (s *Session) PointerRelease() {
	s.Mouse.IsDown = false

	if s.Body.Drag {
		s.Body.Vel = s.Mouse.Vel
	}

	s.Body.Drag = false
}
