package config

import "sort"

// Presets are scripted scenarios on the default 800x600 viewport. The ball
// settles on the floor around x=400 before frame 120.
var Presets = map[string]*Config{
	"drop": {
		Frontend: DefaultFrontend,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Frames:   300,
	},
	"throw": {
		Frontend: DefaultFrontend,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Frames:   DefaultFrames,
		Events: []EventConfig{
			{Frame: 119, Type: "move", X: 400, Y: 540},
			{Frame: 120, Type: "press", X: 400, Y: 540},
			{Frame: 121, Type: "move", X: 420, Y: 500},
			{Frame: 122, Type: "move", X: 440, Y: 460},
			{Frame: 123, Type: "move", X: 460, Y: 420},
			{Frame: 124, Type: "move", X: 480, Y: 380},
			{Frame: 125, Type: "release"},
		},
	},
	"toss-left": {
		Frontend: DefaultFrontend,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Frames:   DefaultFrames,
		Events: []EventConfig{
			{Frame: 119, Type: "move", X: 400, Y: 540},
			{Frame: 120, Type: "press", X: 400, Y: 540},
			{Frame: 121, Type: "move", X: 360, Y: 520},
			{Frame: 122, Type: "move", X: 300, Y: 500},
			{Frame: 123, Type: "move", X: 220, Y: 480},
			{Frame: 124, Type: "release"},
		},
	},
	"hold": {
		Frontend: DefaultFrontend,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Frames:   300,
		Events: []EventConfig{
			{Frame: 0, Type: "move", X: 400, Y: 300},
			{Frame: 0, Type: "press", X: 400, Y: 300},
			{Frame: 10, Type: "move", X: 300, Y: 200},
			{Frame: 20, Type: "move", X: 200, Y: 200},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Events = append([]EventConfig(nil), p.Events...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
