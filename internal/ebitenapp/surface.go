package ebitenapp

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/bounce/internal/render"
)

const strokeWidth = 1.5

type surface struct {
	render.Path
	dst *ebiten.Image
	bg  color.Color
}

func (s *surface) ClearRect(x, y, w, h float64) {
	b := s.dst.Bounds()
	if x <= 0 && y <= 0 && int(w) >= b.Dx() && int(h) >= b.Dy() {
		s.dst.Fill(s.bg)
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), s.bg, false)
}

func (s *surface) Stroke() {
	for _, a := range s.Arcs {
		vector.StrokeCircle(s.dst, float32(a.X), float32(a.Y), float32(a.R), strokeWidth, s.StrokeColor, true)
	}
}

func (s *surface) Fill() {
	for _, a := range s.Arcs {
		vector.DrawFilledCircle(s.dst, float32(a.X), float32(a.Y), float32(a.R), s.FillColor, true)
	}
}
