// Package transpiler translates a parsed Gherkin feature into the line
// model of a Robot Framework test script and collects the canonical step
// texts the companion resource must implement.
package transpiler

import (
	"github.com/fabioluissilva/gherkin2robotframework/internal/robot"
	"github.com/fabioluissilva/gherkin2robotframework/internal/translation"
)

// Context carries all state for translating one feature file: the three
// script sections, the step registry, and collected validation warnings.
// A Context is created fresh per file and holds nothing across files.
type Context struct {
	Provider *translation.Provider

	Settings  robot.Section
	TestCases robot.Section
	Keywords  robot.Section

	Registry *StepRegistry
	Warnings []ValidationWarning

	backgroundAvailable bool
}

// NewContext creates a translation context for one feature file.
func NewContext(provider *translation.Provider) *Context {
	return &Context{
		Provider: provider,
		Registry: NewStepRegistry(),
	}
}

func (c *Context) tr(key, fallback string) string {
	return c.Provider.Tr(key, fallback)
}

func (c *Context) warn(w ValidationWarning) {
	c.Warnings = append(c.Warnings, w)
}
