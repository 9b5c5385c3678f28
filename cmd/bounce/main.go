package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bounce/internal/clock"
	"github.com/san-kum/bounce/internal/config"
	"github.com/san-kum/bounce/internal/ebitenapp"
	"github.com/san-kum/bounce/internal/gui"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/render"
	"github.com/san-kum/bounce/internal/sim"
	"github.com/san-kum/bounce/internal/trace"
	"github.com/san-kum/bounce/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
	width      int
	height     int
	frames     int
	format     string
	realtime   bool
)

// main registers the commands and runs the root command, exiting with
// status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:               "bounce",
		Short:             "draggable bouncing ball",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              runDefault,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable log output")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the raylib window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&width, "width", 0, "window width (0 = monitor)")
	guiCmd.Flags().IntVar(&height, "height", 0, "window height (0 = monitor)")

	ebitenCmd := &cobra.Command{
		Use:   "ebiten",
		Short: "open the ebiten window",
		Args:  cobra.NoArgs,
		RunE:  runEbiten,
	}
	ebitenCmd.Flags().IntVar(&width, "width", 0, "window width (0 = monitor)")
	ebitenCmd.Flags().IntVar(&height, "height", 0, "window height (0 = monitor)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal with mouse tracking",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&width, "width", int(config.DefaultWidth), "logical viewport width")
	tuiCmd.Flags().IntVar(&height, "height", int(config.DefaultHeight), "logical viewport height")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "headless scripted run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	runCmd.Flags().StringVar(&format, "format", "summary", "output format: summary|csv|json|svg|plot")
	runCmd.Flags().IntVar(&width, "width", int(config.DefaultWidth), "viewport width")
	runCmd.Flags().IntVar(&height, "height", int(config.DefaultHeight), "viewport height")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames on the wall clock")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(guiCmd, ebitenCmd, tuiCmd, runCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	log.SetPrefix("bounce: ")
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if !verbose {
		log.SetOutput(io.Discard)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		log.Printf("config: loaded %s", configFile)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// windowSize picks the window size: flags first, then an explicit config
// file, else zero so the frontend captures the monitor.
func windowSize(cmd *cobra.Command, cfg *config.Config) (int, int) {
	w, h := 0, 0
	if configFile != "" {
		w, h = int(cfg.Viewport.Width), int(cfg.Viewport.Height)
	}
	if cmd.Flags().Changed("width") {
		w = width
	}
	if cmd.Flags().Changed("height") {
		h = height
	}
	return w, h
}

// logicalView is the viewport for frontends that have no pixel surface:
// the config value unless a flag overrides it.
func logicalView(cmd *cobra.Command, cfg *config.Config) physics.Viewport {
	view := cfg.View()
	if cmd.Flags().Changed("width") || view.Width == 0 {
		view.Width = float64(width)
	}
	if cmd.Flags().Changed("height") || view.Height == 0 {
		view.Height = float64(height)
	}
	return view
}

func runDefault(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log.Printf("frontend: %s", cfg.Frontend)

	switch cfg.Frontend {
	case "ebiten":
		return openEbiten(cmd, cfg)
	case "tui":
		width, height = int(config.DefaultWidth), int(config.DefaultHeight)
		return openTUI(cmd, cfg)
	default:
		return openGUI(cmd, cfg)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return openGUI(cmd, cfg)
}

func runEbiten(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return openEbiten(cmd, cfg)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return openTUI(cmd, cfg)
}

func openGUI(cmd *cobra.Command, cfg *config.Config) error {
	w, h := windowSize(cmd, cfg)
	return gui.Run(gui.Options{Width: w, Height: h})
}

func openEbiten(cmd *cobra.Command, cfg *config.Config) error {
	w, h := windowSize(cmd, cfg)
	return ebitenapp.Run(ebitenapp.Options{Width: w, Height: h})
}

func openTUI(cmd *cobra.Command, cfg *config.Config) error {
	// the alt screen owns stdout, so verbose logs go to a file
	if verbose {
		f, err := tea.LogToFile("bounce.log", "bounce")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	s, err := sim.NewSession(logicalView(cmd, cfg))
	if err != nil {
		return err
	}
	return viz.Run(s)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	}
	if cmd.Flags().Changed("frames") {
		cfg.Frames = frames
	}
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}

	script, err := cfg.Script()
	if err != nil {
		return err
	}
	view := logicalView(cmd, cfg)
	s, err := sim.NewSession(view)
	if err != nil {
		return err
	}

	ms := metrics.Standard(s)
	metrics.Attach(s, ms)
	rec := trace.NewRecorder()
	s.AddObserver(rec)

	if err := schedule(cmd.Context(), cfg.Frames, s, script); err != nil {
		return err
	}
	log.Printf("run: %d frames, %d scripted events", s.Frames(), script.Len())

	switch format {
	case "csv":
		return rec.WriteCSV(os.Stdout)
	case "json":
		return rec.WriteJSON(os.Stdout, view, metrics.Collect(ms))
	case "svg":
		return rec.WriteSVG(os.Stdout, view)
	case "plot":
		return plotHeight(rec, view)
	case "summary":
		return printSummary(s, ms)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func schedule(ctx context.Context, n int, s *sim.Session, script *sim.Script) error {
	surf := render.Discard{}
	if !realtime {
		return clock.NewStepped(n).Run(ctx, func(now float64) {
			script.Feed(s)
			s.Frame(surf, now)
		})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	err := clock.NewTimer().Run(ctx, func(now float64) {
		script.Feed(s)
		s.Frame(surf, now)
		if s.Frames() >= n {
			cancel()
		}
	})
	if errors.Is(err, context.Canceled) && s.Frames() >= n {
		return nil
	}
	return err
}

func printSummary(s *sim.Session, ms []metrics.Metric) error {
	values := metrics.Collect(ms)
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "frames\t%d\n", s.Frames())
	fmt.Fprintf(w, "position\t(%.2f, %.2f)\n", s.Body.Coor.X, s.Body.Coor.Y)
	fmt.Fprintf(w, "velocity\t(%.2f, %.2f)\n", s.Body.Vel.X, s.Body.Vel.Y)
	fmt.Fprintf(w, "drag\t%v\n", s.Body.Drag)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.4f\n", name, values[name])
	}
	return w.Flush()
}

func plotHeight(rec *trace.Recorder, view physics.Viewport) error {
	if rec.Len() == 0 {
		return trace.ErrEmpty
	}
	floor := view.Height - physics.DefaultRadius
	data := rec.Series(func(f sim.Frame) float64 { return floor - f.Coor.Y })

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("height above floor (px) over %d frames", rec.Len())),
	)
	fmt.Println(graph)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFRAMES\tEVENTS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, p.Frames, len(p.Events))
	}
	return w.Flush()
}
