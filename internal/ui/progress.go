package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressController manages the bubbletea program for batch progress
type ProgressController struct {
	ui      *UI
	program *tea.Program
}

// StartProgress starts the progress display if in interactive mode.
// Returns nil if not in interactive mode; all controller methods are
// nil-safe so callers need no mode checks.
func (ui *UI) StartProgress() *ProgressController {
	if ui.Mode != OutputModeInteractive {
		return nil
	}

	m := NewModel()
	p := tea.NewProgram(m, tea.WithOutput(ui.ErrWriter))

	ctrl := &ProgressController{
		ui:      ui,
		program: p,
	}

	go func() {
		// Progress display is cosmetic; classification proceeds on error.
		_, _ = p.Run()
	}()

	return ctrl
}

// SetFileCount sets the total number of inputs to classify
func (pc *ProgressController) SetFileCount(count int) {
	if pc != nil && pc.program != nil {
		pc.program.Send(FileCountMsg(count))
	}
}

// FileStart indicates classification of one input has started
func (pc *ProgressController) FileStart(name string) {
	if pc != nil && pc.program != nil {
		pc.program.Send(FileStartMsg(name))
	}
}

// FileDone indicates classification of one input has completed
func (pc *ProgressController) FileDone() {
	if pc != nil && pc.program != nil {
		pc.program.Send(FileDoneMsg{})
	}
}

// Done signals that all work is complete
func (pc *ProgressController) Done(err error) {
	if pc != nil && pc.program != nil {
		pc.program.Send(DoneMsg{Err: err})
		pc.program.Wait()
	}
}
