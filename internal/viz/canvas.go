package viz

import (
	"math"
	"strings"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/render"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

const blank = 0x2800

// Canvas is a braille dot grid that implements render.Surface. Viewport
// coordinates are mapped to dots with a uniform Scale so circles stay round.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Scale         float64

	render.Path
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Scale:  1,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// Fit picks the largest scale at which view fits on the canvas.
func (c *Canvas) Fit(view physics.Viewport) {
	sx := float64(c.Width*2) / view.Width
	sy := float64(c.Height*4) / view.Height
	c.Scale = math.Min(sx, sy)
}

// Dots returns the canvas size in sub-pixel dots.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) toDot(v float64) int { return int(math.Round(v * c.Scale)) }

// CellToView maps the center of a character cell to viewport coordinates.
func (c *Canvas) CellToView(col, row int) (float64, float64) {
	return (float64(col*2) + 1) / c.Scale, (float64(row*4) + 2) / c.Scale
}

// Set lights the dot at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0, y0 := c.toDot(x), c.toDot(y)
	x1, y1 := c.toDot(x+w), c.toDot(y+h)
	dw, dh := c.Dots()
	if x0 <= 0 && y0 <= 0 && x1 >= dw && y1 >= dh {
		c.Clear()
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.Unset(px, py)
		}
	}
}

// Stroke traces the outline of every arc in the current path.
func (c *Canvas) Stroke() {
	for _, a := range c.Arcs {
		cx, cy, r := a.X*c.Scale, a.Y*c.Scale, a.R*c.Scale
		step := 0.5 / math.Max(r, 1)
		for th := a.Start; th <= a.End; th += step {
			c.Set(int(math.Round(cx+r*math.Cos(th))), int(math.Round(cy+r*math.Sin(th))))
		}
	}
}

// Fill shades the interior of every arc with an ordered dither whose density
// follows the fill alpha.
func (c *Canvas) Fill() {
	alpha := float64(render.NRGBA(c.FillColor).A) / 255
	level := alpha * 16
	for _, a := range c.Arcs {
		cx, cy, r := a.X*c.Scale, a.Y*c.Scale, a.R*c.Scale
		for py := int(cy - r); py <= int(cy+r)+1; py++ {
			for px := int(cx - r); px <= int(cx+r)+1; px++ {
				dx, dy := float64(px)-cx, float64(py)-cy
				if dx*dx+dy*dy > r*r {
					continue
				}
				if level > bayer4[((py%4)+4)%4][((px%4)+4)%4] {
					c.Set(px, py)
				}
			}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		b.WriteString(string(row))
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
