// Package settings locates and reads the external *.settings files merged
// into generated artifacts: feature.settings into the script's Settings
// section, resource.settings into a newly created resource.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fabioluissilva/gherkin2robotframework/internal/output"
)

// FeatureSettings and ResourceSettings are the recognized file names.
const (
	FeatureSettings  = "feature.settings"
	ResourceSettings = "resource.settings"
)

// Dir walks up from start until it finds a directory containing a
// *.settings file. When none exists, start itself is returned.
func Dir(start string) string {
	dir := start
	for {
		matches, err := filepath.Glob(filepath.Join(dir, "*.settings"))
		if err == nil && len(matches) > 0 {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// Read returns the content of name from the settings directory, falling
// back to the working directory. A missing file is not an error; both
// return values are nil.
func Read(settingsDir, name string) ([]byte, error) {
	dirs := []string{settingsDir}
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	} else {
		output.Verbose(fmt.Sprintf("skipping working-directory settings lookup: %v", err))
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", filepath.Join(dir, name), err)
		}
	}
	return nil, nil
}
