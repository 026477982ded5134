// Package ui handles terminal presentation: output-mode detection,
// lipgloss styles, and the batch-mode progress display.
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode determines how results are rendered.
type OutputMode int

const (
	// OutputModeInteractive enables colors and progress display.
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables styling (piped output).
	OutputModePlain
	// OutputModeJSON emits raw JSON only.
	OutputModeJSON
)

// UI bundles the writers and styles for one invocation.
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New creates a UI with automatic TTY detection.
func New(w, errW io.Writer, format string) *UI {
	mode := detectMode(w, format)
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

func detectMode(w io.Writer, format string) OutputMode {
	if format == "json" {
		return OutputModeJSON
	}
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return OutputModeInteractive
		}
	}
	return OutputModePlain
}

// IsInteractive reports whether output goes to a TTY.
func (ui *UI) IsInteractive() bool {
	return ui.Mode == OutputModeInteractive
}

// IsJSON reports whether JSON-only output was requested.
func (ui *UI) IsJSON() bool {
	return ui.Mode == OutputModeJSON
}
