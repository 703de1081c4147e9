package document

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed samples/*.yaml
var sampleFS embed.FS

var ErrUnknownSample = errors.New("unknown sample")

// SampleNames lists the built-in sample paintings.
func SampleNames() []string {
	entries, err := fs.ReadDir(sampleFS, "samples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// LoadSample parses a built-in sample painting.
func LoadSample(name string) (Snapshot, error) {
	data, err := sampleFS.ReadFile("samples/" + name + ".yaml")
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownSample, name)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse sample %s: %w", name, err)
	}
	return snap.Canonical()
}
