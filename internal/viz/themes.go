package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a color scheme for the terminal frontend.
type Theme struct {
	Name   string
	Ball   lipgloss.Color
	Border lipgloss.Color
	Header lipgloss.Color
	Label  lipgloss.Color
	Value  lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:   "classic",
		Ball:   lipgloss.Color("204"),
		Border: lipgloss.Color("240"),
		Header: lipgloss.Color("204"),
		Label:  lipgloss.Color("245"),
		Value:  lipgloss.Color("252"),
		Accent: lipgloss.Color("205"),
		Muted:  lipgloss.Color("240"),
	}

	ThemeRetro = Theme{
		Name:   "retro",
		Ball:   lipgloss.Color("#00ff00"), // green phosphor
		Border: lipgloss.Color("#005500"),
		Header: lipgloss.Color("#88ff88"),
		Label:  lipgloss.Color("#00cc00"),
		Value:  lipgloss.Color("#00ff00"),
		Accent: lipgloss.Color("#ffff00"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Ball:   lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#888888"),
		Header: lipgloss.Color("#ffffff"),
		Label:  lipgloss.Color("#cccccc"),
		Value:  lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#0088ff"),
		Muted:  lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Ball:   lipgloss.Color("#00a8cc"),
		Border: lipgloss.Color("#4488aa"),
		Header: lipgloss.Color("#0077be"),
		Label:  lipgloss.Color("#4488aa"),
		Value:  lipgloss.Color("#e0f0ff"),
		Accent: lipgloss.Color("#ffd700"),
		Muted:  lipgloss.Color("#4488aa"),
	}
)

var Themes = []Theme{ThemeClassic, ThemeRetro, ThemeMinimal, ThemeOcean}

type styles struct {
	canvas lipgloss.Style
	stats  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	drag   lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		canvas: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Foreground(t.Ball),
		stats:  lipgloss.NewStyle().Padding(0, 2).Width(panelWidth),
		header: lipgloss.NewStyle().Foreground(t.Header).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Label).Width(10),
		value:  lipgloss.NewStyle().Foreground(t.Value),
		drag:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		graph:  lipgloss.NewStyle().Foreground(t.Ball).MarginTop(1),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
	}
}
