package sim

import "github.com/san-kum/bounce/internal/physics"

// Mouse tracks pointer history. Only the pointer handlers write it.
type Mouse struct {
	Move          physics.Vec2
	Down          physics.Vec2
	LastDown      physics.Vec2 // grab offset from the ball center
	IsDown        bool
	Vel           physics.Vec2 // event-rate throw velocity estimate
	StartPosition physics.Vec2
	EndPosition   physics.Vec2
}
