package render

import (
	"fmt"
	"image/color"
)

// Recorder is a Surface that logs every call as a string.
type Recorder struct {
	Calls []string
}

func (r *Recorder) add(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) ClearRect(x, y, w, h float64) { r.add("clear %g %g %g %g", x, y, w, h) }
func (r *Recorder) BeginPath()                   { r.add("begin") }

func (r *Recorder) SetStrokeStyle(c color.Color) {
	n := NRGBA(c)
	r.add("stroke-style %d %d %d %d", n.R, n.G, n.B, n.A)
}

func (r *Recorder) SetFillStyle(c color.Color) {
	n := NRGBA(c)
	r.add("fill-style %d %d %d %d", n.R, n.G, n.B, n.A)
}

func (r *Recorder) Arc(x, y, rad, start, end float64) {
	r.add("arc %g %g %g %.4f %.4f", x, y, rad, start, end)
}

func (r *Recorder) Stroke() { r.add("stroke") }
func (r *Recorder) Fill()   { r.add("fill") }

func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
