// Package ui provides terminal color detection and ANSI rendering helpers
// for the rk CLI.
package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI256 color codes.
const (
	colorField = 74  // blue, field names
	colorMuted = 245 // medium gray, types and flags
	colorError = 160 // red, failures
)

var noColor = true

// Init decides once whether stdout output should be colored.
// It respects NO_COLOR, CLICOLOR_FORCE, CLICOLOR, and TTY detection.
func Init() {
	noColor = !shouldUseColor()
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}

func shouldUseColor() bool {
	// https://no-color.org — any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	// CLICOLOR_FORCE=1 forces color even without a TTY.
	if strings.TrimSpace(os.Getenv("CLICOLOR_FORCE")) == "1" {
		return true
	}
	// CLICOLOR=0 explicitly disables color.
	if strings.TrimSpace(os.Getenv("CLICOLOR")) == "0" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RenderField returns s styled as a field name (blue).
func RenderField(s string) string {
	return render(colorField, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	return render(colorMuted, s)
}

// RenderError returns s styled as a failure (red).
func RenderError(s string) string {
	return render(colorError, s)
}

func render(color int, s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", color, s)
}
