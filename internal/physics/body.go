package physics

const (
	DefaultRadius      = 60.0
	DefaultGravity     = 0.7
	DefaultRestitution = 0.6
	// FloorFriction scales horizontal velocity on every floor contact.
	FloorFriction = 0.97
)

// World holds the constants shared by every body in a session.
type World struct {
	Gravity     float64 // added to Vel.Y once per frame
	Restitution float64 // fraction of velocity kept after a wall hit
}

func DefaultWorld() World {
	return World{Gravity: DefaultGravity, Restitution: DefaultRestitution}
}

type Viewport struct {
	Width, Height float64
}

// Fits reports whether a body of radius r has room to move inside v.
func (v Viewport) Fits(r float64) bool {
	return v.Width >= 2*r && v.Height >= 2*r
}

func (v Viewport) Center() Vec2 {
	return Vec2{v.Width / 2, v.Height / 2}
}

type Body struct {
	Coor Vec2
	Vel  Vec2
	Acc  Vec2
	Rad  float64
	Drag bool
}

// NewBody places a resting ball of DefaultRadius at the center of v.
func NewBody(v Viewport) Body {
	return Body{
		Coor: v.Center(),
		Rad:  DefaultRadius,
	}
}

// Contains reports whether p lies strictly inside the body.
func (b *Body) Contains(p Vec2) bool {
	return Dist(p, b.Coor) < b.Rad
}

func (b *Body) Speed() float64 { return b.Vel.Len() }
