package ui

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity styles
	High   lipgloss.Style
	Medium lipgloss.Style
	Low    lipgloss.Style

	// Grade styles
	GradeStrong lipgloss.Style
	GradeMid    lipgloss.Style
	GradeWeak   lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Border    lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconHigh    string
	IconMedium  string
	IconLow     string
	IconSuccess string
	IconWarning string

	// Score bar glyphs
	BarFilled string
	BarEmpty  string
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output).
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.High = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))     // Red
		s.Medium = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // Yellow
		s.Low = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))     // Blue

		s.GradeStrong = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // Green
		s.GradeMid = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))    // Yellow
		s.GradeWeak = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))    // Red

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))             // Cyan
		s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))              // Gray
		s.Border = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // Gray
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))           // Green
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))           // Yellow

		s.IconHigh = "\u2717"
		s.IconMedium = "\u26a0"
		s.IconLow = "\u2139"
		s.IconSuccess = "\u2713"
		s.IconWarning = "\u26a0"

		s.BarFilled = "\u2588"
		s.BarEmpty = "\u2591"
	} else {
		// No-op styles for non-TTY (plain text output)
		s.High = lipgloss.NewStyle()
		s.Medium = lipgloss.NewStyle()
		s.Low = lipgloss.NewStyle()

		s.GradeStrong = lipgloss.NewStyle()
		s.GradeMid = lipgloss.NewStyle()
		s.GradeWeak = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
		s.Muted = lipgloss.NewStyle()
		s.Border = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()

		// ASCII fallback icons
		s.IconHigh = "HIGH:"
		s.IconMedium = "MED:"
		s.IconLow = "LOW:"
		s.IconSuccess = "OK:"
		s.IconWarning = "WARN:"

		s.BarFilled = "#"
		s.BarEmpty = "-"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// ScoreBar renders a 0-5 score as width filled/empty glyphs.
func (s *Styles) ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := int(score/5.0*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < filled; i++ {
		bar += s.BarFilled
	}
	for i := filled; i < width; i++ {
		bar += s.BarEmpty
	}
	return bar
}
