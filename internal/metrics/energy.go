package metrics

import (
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

// Energy is the mean specific mechanical energy over the run, measured with
// the floor contact line as zero height. Units are px²/frame².
type Energy struct {
	name    string
	gravity float64
	floor   float64
	samples int
	total   float64
	last    float64
}

func NewEnergy(w physics.World, v physics.Viewport) *Energy {
	return &Energy{
		name:    "energy",
		gravity: w.Gravity,
		floor:   v.Height - physics.DefaultRadius,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) OnFrame(f sim.Frame) {
	speed := f.Vel.Len()
	ke := 0.5 * speed * speed
	pe := e.gravity * (e.floor - f.Coor.Y)
	e.last = ke + pe
	e.total += e.last
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

// Last is the energy at the most recent frame.
func (e *Energy) Last() float64 { return e.last }

func (e *Energy) Reset() {
	e.total = 0
	e.last = 0
	e.samples = 0
}
