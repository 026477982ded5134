package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/evidencetools/rigor/internal/profile"
	"github.com/evidencetools/rigor/internal/ui"
)

var (
	// Global flags
	verbose     bool
	format      string
	pretty      bool
	profileName string
	profilePath string
)

// RootCmd is the top-level rigor command
var RootCmd = &cobra.Command{
	Use:   "rigor",
	Short: "Grade the causal-inference strength of research studies",
	Long: `rigor reads a study abstract (or any methodological excerpt) and
grades its causal-inference strength against a rubric of design
best practices.

It detects the study design and identification strategy from textual
signals, scores causal strength, flags internal-validity threats, and
aggregates everything into an overall evidence grade with recommended
use. The assessment is deterministic and rule-based: it reads signals,
not meaning.`,
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	RootCmd.PersistentFlags().StringVar(&profileName, "profile", "default", "Scoring profile name")
	RootCmd.PersistentFlags().StringVar(&profilePath, "profile-file", "", "Path to a custom scoring profile YAML")
}

var (
	uiOnce   sync.Once
	globalUI *ui.UI
)

// GetUI returns the process-wide UI, created on first use from the
// format flag and TTY state.
func GetUI() *ui.UI {
	uiOnce.Do(func() {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	})
	return globalUI
}

// loadProfile resolves the scoring profile from the global flags; a
// --profile-file path wins over a builtin --profile name.
func loadProfile() (*profile.Profile, error) {
	if profilePath != "" {
		p, err := profile.LoadFromFile(profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile: %w", err)
		}
		return p, nil
	}
	return profile.Load(profileName)
}
