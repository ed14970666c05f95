package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode decides whether output carries ANSI styling.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // style only when the writer is a terminal
	ColorAlways                  // force styling, e.g. when piping into less -R
	ColorNever
)

func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "force":
		return ColorAlways, nil
	case "never", "none", "off":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// rendererFor binds a lipgloss renderer to w. In auto mode lipgloss detects
// the profile from w itself, so buffers and pipes get plain text.
func rendererFor(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
