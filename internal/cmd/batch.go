package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evidencetools/rigor/internal/classify"
	"github.com/evidencetools/rigor/internal/input"
	"github.com/evidencetools/rigor/internal/reporter"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir|files...>",
	Short: "Classify many study texts at once",
	Long: `Classify every text/markdown file given, or found in a directory.

Each file is classified independently; there is no shared state between
classifications, so ordering never affects results.

Examples:
  rigor batch abstracts/
  rigor batch a.txt b.txt c.md
  rigor batch abstracts/ --format json > graded.json`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runBatch,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .txt or .md files found in %s", strings.Join(args, ", "))
	}

	p, err := loadProfile()
	if err != nil {
		return err
	}

	u := GetUI()
	progress := u.StartProgress()
	progress.SetFileCount(len(files))

	entries := make([]reporter.BatchEntry, 0, len(files))
	for _, file := range files {
		progress.FileStart(filepath.Base(file))

		entry := reporter.BatchEntry{Source: file}
		src, err := input.Resolve("", file, nil, os.ReadFile)
		if err != nil {
			entry.Err = err
		} else {
			entry.Result = classify.ClassifyWithProfile(src.Text, p)
		}
		entries = append(entries, entry)

		progress.FileDone()
	}
	progress.Done(nil)

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout, pretty)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout, u)
	}

	return rep.ReportBatch(entries)
}

// collectFiles expands directory arguments into their .txt/.md files
// and passes file arguments through. The final list is sorted so runs
// are reproducible regardless of argument or readdir order.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", arg, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".txt", ".md", ".markdown":
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
