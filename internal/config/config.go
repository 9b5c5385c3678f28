package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFrontend = "gui"
	DefaultWidth    = 800.0
	DefaultHeight   = 600.0
	DefaultFrames   = 600
)

var Frontends = []string{"gui", "ebiten", "tui"}

var ErrUnknownFrontend = errors.New("config: unknown frontend")

// Config holds host options. The physics constants are not configurable.
type Config struct {
	Frontend string         `yaml:"frontend"`
	Viewport ViewportConfig `yaml:"viewport"`
	Frames   int            `yaml:"frames"`
	Events   []EventConfig  `yaml:"events,omitempty"`
}

// ViewportConfig is the logical viewport for hosts without a pixel surface
// of their own. Window frontends treat zero as "capture the monitor".
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EventConfig is one scripted pointer event for headless runs.
type EventConfig struct {
	Frame int     `yaml:"frame"`
	Type  string  `yaml:"type"`
	X     float64 `yaml:"x,omitempty"`
	Y     float64 `yaml:"y,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Frontend: DefaultFrontend,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Frames:   DefaultFrames,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	known := false
	for _, f := range Frontends {
		if c.Frontend == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFrontend, c.Frontend, Frontends)
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("%w: negative size", sim.ErrInvalidViewport)
	}
	return nil
}

func (c *Config) View() physics.Viewport {
	return physics.Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

// Script converts the scripted events into a sim.Script for a run of
// c.Frames frames.
func (c *Config) Script() (*sim.Script, error) {
	sc := sim.NewScript(c.Frames)
	for i, e := range c.Events {
		ev, err := sim.ParseEvent(e.Type, e.X, e.Y)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if err := sc.Add(e.Frame, ev); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return sc, nil
}
