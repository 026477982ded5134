package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Message types for updating the batch progress model
type (
	FileCountMsg int
	FileStartMsg string
	FileDoneMsg  struct{}
	DoneMsg      struct{ Err error }
)

// Model is the Bubbletea model for batch classification progress
type Model struct {
	spinner   spinner.Model
	progress  progress.Model
	current   string
	fileCount int
	filesDone int
	width     int
	quitting  bool
	err       error
}

// NewModel creates a new batch progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		spinner:  s,
		progress: p,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case FileCountMsg:
		m.fileCount = int(msg)
		return m, nil

	case FileStartMsg:
		m.current = string(msg)
		return m, nil

	case FileDoneMsg:
		m.filesDone++
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	if m.fileCount > 0 {
		pct := float64(m.filesDone) / float64(m.fileCount)
		sb.WriteString(m.progress.ViewAs(pct))
		sb.WriteString("\n")
	}
	sb.WriteString(m.spinner.View())
	sb.WriteString(" ")
	if m.current != "" {
		sb.WriteString(fmt.Sprintf("Classifying %s (%d/%d)", m.current, m.filesDone+1, m.fileCount))
	} else {
		sb.WriteString("Classifying studies...")
	}

	return sb.String()
}
