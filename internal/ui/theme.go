// Package ui renders teehex terminal output: step progress, result cards
// and markdown. Every component degrades to plain text when stdin is not
// a terminal or color is disabled.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the dark-background hex colors of the theme.
type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
	Border    string
}

// Theme carries colors and the no-color switch shared by all components.
type Theme struct {
	NoColor bool
	Colors  Palette
}

// DefaultPalette is the teehex brand palette.
var DefaultPalette = Palette{
	Primary:   "#2DD4BF",
	Secondary: "#818CF8",
	Success:   "#10B981",
	Warning:   "#F59E0B",
	Error:     "#EF4444",
	Muted:     "#6B7280",
	Border:    "#4B5563",
}

// lightPalette is used on light terminal backgrounds.
var lightPalette = Palette{
	Primary:   "#0F766E",
	Secondary: "#4F46E5",
	Success:   "#059669",
	Warning:   "#D97706",
	Error:     "#DC2626",
	Muted:     "#9CA3AF",
	Border:    "#D1D5DB",
}

// NewTheme returns the default theme. noColor strips all colors.
func NewTheme(noColor bool) *Theme {
	return &Theme{NoColor: noColor, Colors: DefaultPalette}
}

func (t *Theme) color(light, dark string) lipgloss.TerminalColor {
	if t.NoColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func (t *Theme) fg(light, dark string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.color(light, dark))
}

// Primary renders s in the brand color.
func (t *Theme) Primary(s string) string {
	return t.fg(lightPalette.Primary, t.Colors.Primary).Bold(!t.NoColor).Render(s)
}

// Success renders s in the success color.
func (t *Theme) Success(s string) string {
	return t.fg(lightPalette.Success, t.Colors.Success).Render(s)
}

// Warn renders s in the warning color.
func (t *Theme) Warn(s string) string {
	return t.fg(lightPalette.Warning, t.Colors.Warning).Render(s)
}

// Error renders s in the error color.
func (t *Theme) Error(s string) string {
	return t.fg(lightPalette.Error, t.Colors.Error).Render(s)
}

// Muted renders s in the muted color.
func (t *Theme) Muted(s string) string {
	return t.fg(lightPalette.Muted, t.Colors.Muted).Render(s)
}

// Status symbols.
func (t *Theme) SymSuccess() string  { return t.Success("✓") }
func (t *Theme) SymError() string    { return t.Error("✗") }
func (t *Theme) SymWarning() string  { return t.Warn("!") }
func (t *Theme) SymProgress() string { return t.Muted("○") }

// Card renders a titled rounded-border box. Detail blocks are separated
// from the title by a blank line.
func (t *Theme) Card(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(t.Primary(title))
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.color(lightPalette.Border, t.Colors.Border)).
		Padding(0, 2).
		Render(body.String())
}

// KeyValue is one row of a KeyValues block.
type KeyValue struct {
	Key   string
	Value string
}

// KeyValues renders rows with keys padded to a common width.
func (t *Theme) KeyValues(rows []KeyValue) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.Key))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		pad := strings.Repeat(" ", width-lipgloss.Width(r.Key))
		lines[i] = t.Muted(r.Key) + pad + "  " + r.Value
	}
	return strings.Join(lines, "\n")
}
