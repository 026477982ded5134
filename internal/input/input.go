// Package input resolves the study text from the CLI surface: a file
// path, an inline string, or stdin. Markdown files are reduced to plain
// text before classification. Validation lives here so the classifier
// core stays total.
package input

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// MinLength is the minimum trimmed input length. Anything shorter is
// rejected before classification: there is no signal to extract from a
// fragment.
const MinLength = 50

// Source says where the classified text came from, for reporting.
type Source struct {
	Name string // file path, "inline", or "stdin"
	Text string
}

// Resolve picks the study text by priority: inline --text flag, then a
// positional file path, then stdin.
func Resolve(inline, path string, stdin io.Reader, readFile func(string) ([]byte, error)) (*Source, error) {
	switch {
	case inline != "":
		return validated(&Source{Name: "inline", Text: inline})

	case path != "":
		data, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		text := string(data)
		if isMarkdownPath(path) {
			text = MarkdownToPlain(data)
		}
		return validated(&Source{Name: path, Text: text})

	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return validated(&Source{Name: "stdin", Text: string(data)})
	}
}

func validated(s *Source) (*Source, error) {
	s.Text = strings.TrimSpace(s.Text)
	if len(s.Text) < MinLength {
		return nil, fmt.Errorf("input from %s is too short (%d chars, need >= %d): supply a study abstract or longer excerpt",
			s.Name, len(s.Text), MinLength)
	}
	return s, nil
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
