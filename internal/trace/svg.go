package trace

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/render"
)

// WriteSVG draws the trajectory of the ball center as a polyline in
// viewport coordinates, with the ball at its final position on top.
func (r *Recorder) WriteSVG(w io.Writer, view physics.Viewport) error {
	if len(r.frames) == 0 {
		return ErrEmpty
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="#888888" stroke-width="1.5" d="M`,
		view.Width, view.Height, view.Width, view.Height))

	for i, f := range r.frames {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", f.Coor.X, f.Coor.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", f.Coor.X, f.Coor.Y))
		}
	}
	sb.WriteString("\"/>\n")

	last := r.frames[len(r.frames)-1]
	fill := render.NRGBA(render.BallFill)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" stroke="%s" fill="%s" fill-opacity="%.2f"/>
</svg>
`, last.Coor.X, last.Coor.Y, physics.DefaultRadius,
		hex(render.BallStroke), hex(render.BallFill), float64(fill.A)/255))

	_, err := io.WriteString(w, sb.String())
	return err
}

func hex(c color.Color) string {
	n := render.NRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
