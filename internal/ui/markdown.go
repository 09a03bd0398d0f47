package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// DefaultWrap is the markdown word-wrap width.
const DefaultWrap = 80

// RenderMarkdown renders md for the terminal. A no-color theme uses the
// plain notty style so output stays readable when piped.
func (t *Theme) RenderMarkdown(md string) (string, error) {
	style := glamour.WithAutoStyle()
	if t.NoColor {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(DefaultWrap))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
