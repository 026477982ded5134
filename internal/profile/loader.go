package profile

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed profiles/*.yaml
var profileFS embed.FS

var builtinProfiles = map[string]*Profile{}

func init() {
	entries, err := profileFS.ReadDir("profiles")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := profileFS.ReadFile(filepath.Join("profiles", entry.Name()))
		if err != nil {
			continue
		}

		var p Profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			continue
		}
		if err := p.Validate(); err != nil {
			continue
		}

		builtinProfiles[p.Name] = &p
	}
}

// Load returns a builtin profile by name.
func Load(name string) (*Profile, error) {
	if p, ok := builtinProfiles[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown profile: %s (available: %v)", name, Available())
}

// Default returns the shipped default profile.
func Default() *Profile {
	p, err := Load("default")
	if err != nil {
		// The default is embedded; a missing or invalid default is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return p
}

// Available returns the names of all builtin profiles, sorted.
func Available() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFromFile reads and validates a user-supplied profile YAML.
func LoadFromFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = filepath.Base(path)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
