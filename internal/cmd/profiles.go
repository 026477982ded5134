package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evidencetools/rigor/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available scoring profiles",
	Long: `List the builtin scoring profiles and their weights.

A profile sets the component weights and grade thresholds used for the
overall evidence grade. Select one with --profile, or point --profile-file
at your own YAML.`,
	RunE:         runProfiles,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	u := GetUI()

	for _, name := range profile.Available() {
		p, err := profile.Load(name)
		if err != nil {
			continue
		}

		fmt.Fprintln(u.Writer, u.Styles.Header.Render(p.Name))
		w := p.Weights
		fmt.Fprintf(u.Writer, "  weights:    causal %.2f, internal %.2f, external %.2f, measurement %.3g, transparency %.3g\n",
			w.CausalStrength, w.InternalValidity, w.ExternalValidity, w.MeasurementQuality, w.Transparency)
		t := p.Thresholds
		fmt.Fprintf(u.Writer, "  thresholds: very strong >= %.1f, strong >= %.1f, moderate >= %.1f, weak >= %.1f\n",
			t.VeryStrong, t.Strong, t.Moderate, t.Weak)
	}

	return nil
}
