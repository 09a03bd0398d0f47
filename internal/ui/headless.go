package ui

import (
	"io"

	"github.com/mattn/go-isatty"
)

// fdReader is implemented by *os.File.
type fdReader interface {
	io.Reader
	Fd() uintptr
}

// HeadlessManager decides whether the UI may prompt and animate. Input
// that is not a terminal, or not a file at all, is headless.
type HeadlessManager struct {
	in     io.Reader
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager that inspects in.
func NewHeadlessManager(in io.Reader) *HeadlessManager {
	return &HeadlessManager{in: in}
}

// IsHeadless returns true when the UI should operate in headless mode.
// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	f, ok := h.in.(fdReader)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}
