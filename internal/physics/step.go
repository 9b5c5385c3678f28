package physics

// Contact records which viewport bounds a step collided with.
type Contact uint8

const (
	Floor Contact = 1 << iota
	Ceiling
	Left
	Right
)

func (c Contact) Has(f Contact) bool { return c&f != 0 }

func (c Contact) String() string {
	if c == 0 {
		return "none"
	}
	s := ""
	for _, f := range []struct {
		flag Contact
		name string
	}{{Floor, "floor"}, {Ceiling, "ceiling"}, {Left, "left"}, {Right, "right"}} {
		if c.Has(f.flag) {
			if s != "" {
				s += "|"
			}
			s += f.name
		}
	}
	return s
}

// Move advances b by one frame of explicit Euler integration and resolves
// collisions against the bounds of v. The step size is one frame, so the
// visual speed depends on the frame rate. Dragged bodies are left untouched.
func Move(b *Body, w World, v Viewport) Contact {
	if b.Drag {
		return 0
	}

	b.Vel.Y += w.Gravity
	b.Vel = b.Vel.Add(b.Acc)
	b.Coor = b.Coor.Add(b.Vel)

	var hit Contact

	top, bottom := b.Rad, v.Height-b.Rad
	if b.Coor.Y >= bottom || b.Coor.Y <= top {
		b.Vel.Y *= -w.Restitution
	}
	if b.Coor.Y >= bottom {
		b.Coor.Y = bottom
		b.Vel.X *= FloorFriction
		hit |= Floor
	} else if b.Coor.Y <= top {
		b.Coor.Y = top
		hit |= Ceiling
	}

	left, right := b.Rad, v.Width-b.Rad
	if b.Coor.X >= right || b.Coor.X <= left {
		b.Vel.X *= -w.Restitution
	}
	if b.Coor.X >= right {
		b.Coor.X = right
		hit |= Right
	} else if b.Coor.X <= left {
		b.Coor.X = left
		hit |= Left
	}

	return hit
}
