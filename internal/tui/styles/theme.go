// Package styles holds the color theme and the lipgloss styles derived
// from it.
package styles

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

// Theme is the semantic palette. Styles are derived lazily so callers
// share one allocation.
type Theme struct {
	Name string

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	BgSubtle    color.Color
	BgHighlight color.Color

	FgBase     color.Color
	FgMuted    color.Color
	FgSubtle   color.Color
	FgInverted color.Color

	Border      color.Color
	BorderFocus color.Color

	Success color.Color
	Error   color.Color
	Warning color.Color
	Info    color.Color

	styles *Styles
}

type Styles struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Bold     lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	ListItem    lipgloss.Style
	ListCursor  lipgloss.Style
	Label       lipgloss.Style
	FieldFocus  lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
	Dialog      lipgloss.Style
	StatusBar   lipgloss.Style
}

func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base: base,

		Title: base.
			Foreground(t.Accent).
			Bold(true),

		Subtitle: base.
			Foreground(t.Secondary).
			Bold(true),

		Muted:  base.Foreground(t.FgMuted),
		Subtle: base.Foreground(t.FgSubtle),
		Bold:   base.Bold(true),

		Success: base.Foreground(t.Success),
		Error:   base.Foreground(t.Error),
		Warning: base.Foreground(t.Warning),
		Info:    base.Foreground(t.Info),

		Tab: base.
			Foreground(t.FgMuted).
			Padding(0, 1),

		TabActive: base.
			Foreground(t.FgInverted).
			Background(t.Primary).
			Bold(true).
			Padding(0, 1),

		ListItem: base.Padding(0, 2),

		ListCursor: base.
			Foreground(t.Accent).
			Bold(true),

		Label: base.
			Foreground(t.FgMuted).
			Width(14),

		FieldFocus: base.
			Foreground(t.Accent).
			Bold(true),

		Button: base.
			Background(t.BgSubtle).
			Padding(0, 2),

		ButtonFocus: base.
			Background(t.Primary).
			Foreground(t.FgInverted).
			Padding(0, 2),

		Dialog: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(1, 2),

		StatusBar: base.
			Foreground(t.FgMuted).
			Background(t.BgSubtle).
			Padding(0, 1),
	}
}

// Default is the shipped theme.
func Default() *Theme {
	return &Theme{
		Name: "relay",

		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#0EA5E9"),
		Accent:    lipgloss.Color("#F59E0B"),

		BgSubtle:    lipgloss.Color("#27272A"),
		BgHighlight: lipgloss.Color("#3F3F46"),

		FgBase:     lipgloss.Color("#E4E4E7"),
		FgMuted:    lipgloss.Color("#A1A1AA"),
		FgSubtle:   lipgloss.Color("#71717A"),
		FgInverted: lipgloss.Color("#18181B"),

		Border:      lipgloss.Color("#3F3F46"),
		BorderFocus: lipgloss.Color("#7C3AED"),

		Success: lipgloss.Color("#22C55E"),
		Error:   lipgloss.Color("#EF4444"),
		Warning: lipgloss.Color("#EAB308"),
		Info:    lipgloss.Color("#38BDF8"),
	}
}

// ParseHex turns "#rrggbb" into a color, black on bad input.
func ParseHex(hex string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
