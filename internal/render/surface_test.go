package render

import (
	"image/color"
	"testing"

	"github.com/san-kum/bounce/internal/physics"
)

func TestDrawCallOrder(t *testing.T) {
	rec := &Recorder{}
	Draw(rec, physics.Body{Coor: physics.Vec2{X: 120, Y: 80}, Rad: 60})

	expected := []string{
		"begin",
		"stroke-style 250 10 80 255",
		"fill-style 250 10 80 26",
		"arc 120 80 60 0.0000 6.2832",
		"stroke",
		"fill",
	}
	if len(rec.Calls) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(rec.Calls), rec.Calls)
	}
	for i := range expected {
		if rec.Calls[i] != expected[i] {
			t.Errorf("call %d: expected %q, got %q", i, expected[i], rec.Calls[i])
		}
	}
}

func TestDrawDoesNotClear(t *testing.T) {
	rec := &Recorder{}
	Draw(rec, physics.Body{Rad: 1})
	for _, c := range rec.Calls {
		if len(c) >= 5 && c[:5] == "clear" {
			t.Errorf("expected no clear call, got %q", c)
		}
	}
}

func TestPathBeginResetsArcs(t *testing.T) {
	var p Path
	p.Arc(1, 2, 3, 0, 1)
	p.Arc(4, 5, 6, 0, 1)
	p.BeginPath()
	if len(p.Arcs) != 0 {
		t.Errorf("expected empty path, got %d arcs", len(p.Arcs))
	}
}

func TestNRGBA(t *testing.T) {
	if c := NRGBA(nil); c != (color.NRGBA{A: 255}) {
		t.Errorf("expected opaque black, got %+v", c)
	}
	if c := NRGBA(BallFill); c != BallFill {
		t.Errorf("expected %+v, got %+v", BallFill, c)
	}
}
