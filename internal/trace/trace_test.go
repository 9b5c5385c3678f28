package trace

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/render"
	"github.com/san-kum/bounce/internal/sim"
)

var view = physics.Viewport{Width: 800, Height: 600}

func record(t *testing.T, frames int) *Recorder {
	t.Helper()
	s, err := sim.NewSession(view)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRecorder()
	s.AddObserver(r)
	for i := 0; i < frames; i++ {
		s.Frame(render.Discard{}, float64(i*16))
	}
	return r
}

func TestRecorder(t *testing.T) {
	r := record(t, 5)

	if r.Len() != 5 {
		t.Fatalf("expected 5 frames, got %d", r.Len())
	}
	for i, f := range r.Frames() {
		if f.Index != i {
			t.Errorf("expected index %d, got %d", i, f.Index)
		}
	}

	ys := r.Series(func(f sim.Frame) float64 { return f.Coor.Y })
	for i := 1; i < len(ys); i++ {
		if ys[i] <= ys[i-1] {
			t.Errorf("expected falling ball, y[%d]=%g y[%d]=%g", i-1, ys[i-1], i, ys[i])
		}
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("expected empty recorder after reset, got %d", r.Len())
	}
}

func TestWriteCSV(t *testing.T) {
	r := record(t, 40)

	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(rows) != 41 {
		t.Fatalf("expected header plus 40 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != "frame,time,elapsed,x,y,vx,vy,drag,contact" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[1][4] != "300.700000" {
		t.Errorf("expected y 300.700000 on first frame, got %s", rows[1][4])
	}

	floor := false
	for _, row := range rows[1:] {
		if row[8] == "floor" {
			floor = true
		}
	}
	if !floor {
		t.Error("expected a floor contact within 40 frames")
	}
}

func TestWriteJSON(t *testing.T) {
	g := NewWithT(t)
	r := record(t, 3)

	var buf bytes.Buffer
	g.Expect(r.WriteJSON(&buf, view, map[string]float64{"bounces": 0})).To(Succeed())

	var got Export
	g.Expect(json.Unmarshal(buf.Bytes(), &got)).To(Succeed())
	g.Expect(got.Width).To(Equal(800.0))
	g.Expect(got.Frames).To(Equal(3))
	g.Expect(got.Points).To(HaveLen(3))
	g.Expect(got.Points[0].VY).To(BeNumerically("~", 0.7, 1e-9))
	g.Expect(got.Points[0].Contact).To(BeEmpty())
	g.Expect(got.Metrics).To(HaveKeyWithValue("bounces", 0.0))
}

func TestWriteSVG(t *testing.T) {
	r := record(t, 10)

	var buf bytes.Buffer
	if err := r.WriteSVG(&buf, view); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`width="800" height="600"`,
		`d="M400.0,300.7 L400.0,302.1`,
		`stroke="#fa0a50"`,
		`fill-opacity="0.10"`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected svg to contain %q", want)
		}
	}
	if strings.Count(out, " L") != 9 {
		t.Errorf("expected 9 line segments, got %d", strings.Count(out, " L"))
	}
}

func TestWriteSVGEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRecorder().WriteSVG(&buf, view); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}
