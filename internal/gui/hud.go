package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/sim"
)

const telemetryCapacity = 240

var (
	ColText   = rl.NewColor(90, 90, 90, 255)
	ColAccent = rl.NewColor(250, 10, 80, 255)
)

// hud observes frames and draws a telemetry overlay: the last frame's
// state, the bounce count and an energy line strip.
type hud struct {
	visible   bool
	last      sim.Frame
	energy    *metrics.Energy
	bounces   *metrics.Bounces
	telemetry []float64
}

func newHUD(s *sim.Session) *hud {
	return &hud{
		visible:   true,
		energy:    metrics.NewEnergy(s.World, s.View),
		bounces:   metrics.NewBounces(),
		telemetry: make([]float64, 0, telemetryCapacity),
	}
}

func (h *hud) OnFrame(f sim.Frame) {
	h.last = f
	h.energy.OnFrame(f)
	h.bounces.OnFrame(f)
	h.telemetry = append(h.telemetry, h.energy.Last())
	if len(h.telemetry) > telemetryCapacity {
		h.telemetry = h.telemetry[1:]
	}
}

func (h *hud) reset() {
	h.energy.Reset()
	h.bounces.Reset()
	h.telemetry = h.telemetry[:0]
}

func (h *hud) draw(screenH int32) {
	if !h.visible {
		return
	}
	f := h.last
	lines := []string{
		fmt.Sprintf("frame %d", f.Index),
		fmt.Sprintf("pos %.1f, %.1f", f.Coor.X, f.Coor.Y),
		fmt.Sprintf("vel %.2f, %.2f", f.Vel.X, f.Vel.Y),
		fmt.Sprintf("contact %s", f.Contact),
		fmt.Sprintf("bounces %.0f", h.bounces.Value()),
	}
	for i, line := range lines {
		rl.DrawText(line, 10, int32(34+16*i), 14, ColText)
	}

	if len(h.telemetry) < 2 {
		return
	}
	x, y := float32(10), float32(screenH-70)
	rl.DrawLineStrip(telemetryPoints(h.telemetry, x, y, 240, 60), ColAccent)
	rl.DrawText(fmt.Sprintf("E %.1f", h.telemetry[len(h.telemetry)-1]), int32(x)+250, int32(y)+50, 14, ColText)
}

// telemetryPoints scales vals into the w x h box at (x, y), oldest sample
// on the left and the largest value on top.
func telemetryPoints(vals []float64, x, y, w, h float32) []rl.Vector2 {
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	points := make([]rl.Vector2, len(vals))
	for i, v := range vals {
		px := x + float32(i)/float32(len(vals)-1)*w
		py := y + h - float32((v-lo)/(hi-lo))*h
		points[i] = rl.NewVector2(px, py)
	}
	return points
}
