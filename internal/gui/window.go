package gui

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

var (
	ColBg      = rl.NewColor(255, 255, 255, 255)
	ColTextDim = rl.NewColor(150, 150, 150, 255)
)

// Options configures the raylib window. A zero size opens the window at the
// monitor resolution.
type Options struct {
	Width, Height int
	Title         string
}

type App struct {
	Session *sim.Session
	surface *surface
	input   pointerState
	hud     *hud
}

// Run opens the window, captures its size as the session viewport and runs
// frames at the display refresh rate until the window is closed.
func Run(opts Options) error {
	title := opts.Title
	if title == "" {
		title = "bounce"
	}

	rl.SetConfigFlags(rl.FlagVsyncHint | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), title)
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyEscape)

	rate := rl.GetMonitorRefreshRate(rl.GetCurrentMonitor())
	if rate <= 0 {
		rate = 60
	}
	rl.SetTargetFPS(int32(rate))

	view := physics.Viewport{Width: float64(rl.GetScreenWidth()), Height: float64(rl.GetScreenHeight())}
	s, err := sim.NewSession(view)
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	log.Printf("gui: viewport %gx%g at %d Hz", view.Width, view.Height, rate)

	app := NewApp(s)
	app.RunLoop()
	log.Printf("gui: closed after %d frames", s.Frames())
	return nil
}

func NewApp(s *sim.Session) *App {
	h := newHUD(s)
	s.AddObserver(h)
	return &App{
		Session: s,
		surface: &surface{bg: ColBg},
		hud:     h,
	}
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update turns this frame's mouse state into queued pointer events.
func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyR) {
		a.Session.Reset()
		a.hud.reset()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.hud.visible = !a.hud.visible
	}

	pos := rl.GetMousePosition()
	events := a.input.poll(float64(pos.X), float64(pos.Y),
		rl.IsMouseButtonPressed(rl.MouseLeftButton),
		rl.IsMouseButtonReleased(rl.MouseLeftButton))
	for _, ev := range events {
		a.Session.Post(ev)
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	a.Session.Frame(a.surface, rl.GetTime()*1000)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 10, 10, 14, ColTextDim)
	a.hud.draw(int32(rl.GetScreenHeight()))
	rl.EndDrawing()
}
