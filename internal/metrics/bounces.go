package metrics

import (
	"math/bits"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

// Bounces counts collisions. A bound that stays in contact on consecutive
// frames, such as a ball resting on the floor, counts once.
type Bounces struct {
	name  string
	prev  physics.Contact
	count int
}

func NewBounces() *Bounces {
	return &Bounces{name: "bounces"}
}

func (b *Bounces) Name() string { return b.name }

func (b *Bounces) OnFrame(f sim.Frame) {
	fresh := f.Contact &^ b.prev
	b.count += bits.OnesCount8(uint8(fresh))
	b.prev = f.Contact
}

func (b *Bounces) Value() float64 { return float64(b.count) }

func (b *Bounces) Reset() {
	b.prev = 0
	b.count = 0
}

type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string { return p.name }

func (p *PeakSpeed) OnFrame(f sim.Frame) {
	if s := f.Vel.Len(); s > p.peak {
		p.peak = s
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }

func (p *PeakSpeed) Reset() { p.peak = 0 }
