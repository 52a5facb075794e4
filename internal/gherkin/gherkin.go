// Package gherkin wraps the upstream Cucumber parser: it reads feature
// files into message trees and discovers feature files for batch runs.
package gherkin

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	cucumber "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
)

// ParseFile parses one feature file into a Gherkin document.
func ParseFile(path string) (*messages.GherkinDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	ids := &messages.UUID{}
	doc, err := cucumber.ParseGherkinDocument(f, ids.NewId)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// FeatureFiles walks root and returns every *.feature file, in walk order.
func FeatureFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".feature") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return files, nil
}
