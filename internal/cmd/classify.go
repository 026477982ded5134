package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evidencetools/rigor/internal/classify"
	"github.com/evidencetools/rigor/internal/input"
	"github.com/evidencetools/rigor/internal/reporter"
)

var inlineText string

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify the causal strength of one study text",
	Long: `Classify a single study abstract or excerpt.

The text comes from a file argument, the --text flag, or stdin when
neither is given. Markdown files are reduced to plain text first.
Input shorter than ` + fmt.Sprint(input.MinLength) + ` characters after trimming is rejected.

Examples:
  rigor classify abstract.txt
  rigor classify --text "We randomized 1,200 households..."
  pbpaste | rigor classify
  rigor classify abstract.md --format json --pretty > result.json`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runClassify,
	SilenceUsage: true,
}

func init() {
	classifyCmd.Flags().StringVarP(&inlineText, "text", "t", "", "Classify this text instead of reading a file or stdin")
	RootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	src, err := input.Resolve(inlineText, path, cmd.InOrStdin(), os.ReadFile)
	if err != nil {
		return err
	}

	p, err := loadProfile()
	if err != nil {
		return err
	}

	u := GetUI()
	if verbose {
		fmt.Fprintf(u.ErrWriter, "Classifying %s (%d chars) with profile %q\n",
			src.Name, len(src.Text), p.Name)
	}

	result := classify.ClassifyWithProfile(src.Text, p)

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout, pretty)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout, u)
	}

	return rep.Report(result)
}
