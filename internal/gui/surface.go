package gui

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/bounce/internal/render"
)

// surface draws render.Surface paths with raylib primitives. It must only be
// used between rl.BeginDrawing and rl.EndDrawing.
type surface struct {
	render.Path
	bg rl.Color
}

func toColor(c color.Color) rl.Color {
	n := render.NRGBA(c)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func fullTurn(a render.ArcPath) bool { return a.End-a.Start >= 2*math.Pi-1e-9 }

func degrees(rad float64) float32 { return float32(rad * 180 / math.Pi) }

func (s *surface) ClearRect(x, y, w, h float64) {
	rl.DrawRectangle(int32(x), int32(y), int32(math.Ceil(w)), int32(math.Ceil(h)), s.bg)
}

func (s *surface) Stroke() {
	col := toColor(s.StrokeColor)
	for _, a := range s.Arcs {
		if fullTurn(a) {
			rl.DrawCircleLines(int32(a.X), int32(a.Y), float32(a.R), col)
			continue
		}
		center := rl.NewVector2(float32(a.X), float32(a.Y))
		rl.DrawCircleSectorLines(center, float32(a.R), degrees(a.Start), degrees(a.End), 48, col)
	}
}

func (s *surface) Fill() {
	col := toColor(s.FillColor)
	for _, a := range s.Arcs {
		center := rl.NewVector2(float32(a.X), float32(a.Y))
		if fullTurn(a) {
			rl.DrawCircleV(center, float32(a.R), col)
			continue
		}
		rl.DrawCircleSector(center, float32(a.R), degrees(a.Start), degrees(a.End), 48, col)
	}
}
