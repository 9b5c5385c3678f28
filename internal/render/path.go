package render

import "image/color"

// ArcPath is a single arc of the current path.
type ArcPath struct {
	X, Y, R    float64
	Start, End float64
}

// Path accumulates the state a Surface needs between BeginPath and
// Stroke/Fill. Backends that can only draw whole circles embed it.
type Path struct {
	Arcs        []ArcPath
	StrokeColor color.Color
	FillColor   color.Color
}

func (p *Path) BeginPath()                   { p.Arcs = p.Arcs[:0] }
func (p *Path) SetStrokeStyle(c color.Color) { p.StrokeColor = c }
func (p *Path) SetFillStyle(c color.Color)   { p.FillColor = c }

func (p *Path) Arc(x, y, r, start, end float64) {
	p.Arcs = append(p.Arcs, ArcPath{X: x, Y: y, R: r, Start: start, End: end})
}

// NRGBA converts c to non-premultiplied 8-bit channels, falling back to
// opaque black when c is nil.
func NRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
