package render

import (
	"image/color"
	"math"

	"github.com/san-kum/bounce/internal/physics"
)

// Surface is the subset of a 2D path-drawing context the renderer uses.
// Coordinates are in viewport units with the origin at the top left.
type Surface interface {
	ClearRect(x, y, w, h float64)
	BeginPath()
	SetStrokeStyle(c color.Color)
	SetFillStyle(c color.Color)
	Arc(x, y, r, start, end float64)
	Stroke()
	Fill()
}

var (
	BallStroke = color.NRGBA{R: 250, G: 10, B: 80, A: 255}
	BallFill   = color.NRGBA{R: 250, G: 10, B: 80, A: 26}
)

// Draw paints b as an outlined, translucent disc. It does not clear s.
func Draw(s Surface, b physics.Body) {
	s.BeginPath()
	s.SetStrokeStyle(BallStroke)
	s.SetFillStyle(BallFill)
	s.Arc(b.Coor.X, b.Coor.Y, b.Rad, 0, 2*math.Pi)
	s.Stroke()
	s.Fill()
}

// Discard is a Surface that draws nothing, for headless sessions.
type Discard struct{}

func (Discard) ClearRect(x, y, w, h float64)    {}
func (Discard) BeginPath()                      {}
func (Discard) SetStrokeStyle(c color.Color)    {}
func (Discard) SetFillStyle(c color.Color)      {}
func (Discard) Arc(x, y, r, start, end float64) {}
func (Discard) Stroke()                         {}
func (Discard) Fill()                           {}
