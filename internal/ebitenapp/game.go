package ebitenapp

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

var background = color.White

// Options configures the window. A zero size captures the monitor size.
type Options struct {
	Width, Height int
	Title         string
}

// Game hosts a session on ebiten's loop. Update syncs with the display
// refresh rate, so every Update/Draw pair is one animation frame.
type Game struct {
	Session *sim.Session
	Clock   func() time.Time

	start   time.Time
	surface *surface
	cursor  [2]int
	seen    bool
}

func NewGame(s *sim.Session) *Game {
	return &Game{
		Session: s,
		Clock:   time.Now,
		surface: &surface{bg: background},
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Session.Reset()
	}

	x, y := ebiten.CursorPosition()
	g.pointer(x, y,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
	return nil
}

// pointer queues a move when the cursor changed, then any button edges.
func (g *Game) pointer(x, y int, pressed, released bool) {
	if !g.seen || g.cursor != [2]int{x, y} {
		g.Session.Post(sim.PointerMoved{X: float64(x), Y: float64(y)})
	}
	g.cursor, g.seen = [2]int{x, y}, true

	if pressed {
		g.Session.Post(sim.PointerPressed{X: float64(x), Y: float64(y)})
	}
	if released {
		g.Session.Post(sim.PointerReleased{})
	}
}

// timestamp returns milliseconds since the first frame.
func (g *Game) timestamp() float64 {
	now := g.Clock()
	if g.start.IsZero() {
		g.start = now
	}
	return float64(now.Sub(g.start)) / float64(time.Millisecond)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.Session.Frame(g.surface, g.timestamp())
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.Session.View.Width), int(g.Session.View.Height)
}

// Run captures the viewport, opens the window and blocks until it closes.
func Run(opts Options) error {
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = ebiten.Monitor().Size()
	}
	title := opts.Title
	if title == "" {
		title = "bounce"
	}

	s, err := sim.NewSession(physics.Viewport{Width: float64(w), Height: float64(h)})
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	log.Printf("ebiten: viewport %dx%d, frames synced to display", w, h)

	if err := ebiten.RunGame(NewGame(s)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Printf("ebiten: closed after %d frames", s.Frames())
	return nil
}
