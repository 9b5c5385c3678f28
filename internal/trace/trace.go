package trace

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

var ErrEmpty = errors.New("trace: no frames recorded")

// Recorder is a frame observer that keeps every frame of a run.
type Recorder struct {
	frames []sim.Frame
}

func NewRecorder() *Recorder {
	return &Recorder{frames: make([]sim.Frame, 0, 256)}
}

func (r *Recorder) OnFrame(f sim.Frame) { r.frames = append(r.frames, f) }

func (r *Recorder) Frames() []sim.Frame { return r.frames }

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Reset() { r.frames = r.frames[:0] }

// Series maps every recorded frame through fn.
func (r *Recorder) Series(fn func(sim.Frame) float64) []float64 {
	out := make([]float64, len(r.frames))
	for i, f := range r.frames {
		out[i] = fn(f)
	}
	return out
}

var csvHeader = []string{"frame", "time", "elapsed", "x", "y", "vx", "vy", "drag", "contact"}

func (r *Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, f := range r.frames {
		row := []string{
			strconv.Itoa(f.Index),
			formatFloat(f.Timestamp),
			formatFloat(f.Elapsed),
			formatFloat(f.Coor.X),
			formatFloat(f.Coor.Y),
			formatFloat(f.Vel.X),
			formatFloat(f.Vel.Y),
			strconv.FormatBool(f.Drag),
			f.Contact.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

type Export struct {
	Width   float64            `json:"width"`
	Height  float64            `json:"height"`
	Frames  int                `json:"frames"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
	Points  []Point            `json:"points"`
}

type Point struct {
	Frame   int     `json:"frame"`
	Time    float64 `json:"time"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	Drag    bool    `json:"drag,omitempty"`
	Contact string  `json:"contact,omitempty"`
}

func (r *Recorder) Export(view physics.Viewport, metrics map[string]float64) Export {
	data := Export{
		Width:   view.Width,
		Height:  view.Height,
		Frames:  len(r.frames),
		Metrics: metrics,
		Points:  make([]Point, len(r.frames)),
	}
	for i, f := range r.frames {
		p := Point{
			Frame: f.Index,
			Time:  f.Timestamp,
			X:     f.Coor.X,
			Y:     f.Coor.Y,
			VX:    f.Vel.X,
			VY:    f.Vel.Y,
			Drag:  f.Drag,
		}
		if f.Contact != 0 {
			p.Contact = f.Contact.String()
		}
		data.Points[i] = p
	}
	return data
}

func (r *Recorder) WriteJSON(w io.Writer, view physics.Viewport, metrics map[string]float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.Export(view, metrics))
}
