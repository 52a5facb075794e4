package transpiler

import (
	"time"

	"github.com/fabioluissilva/gherkin2robotframework/internal/robot"
	"github.com/fabioluissilva/gherkin2robotframework/internal/translation"
)

// ScriptOptions configures script serialization for one feature.
type ScriptOptions struct {
	FeatureName  string
	ResourceFile string    // file name of the companion resource
	Settings     []byte    // merged feature.settings content, may be nil
	Now          time.Time // generation timestamp
}

// GeneratedBy renders the generation stamp embedded in script and
// resource artifacts.
func GeneratedBy(now time.Time) string {
	return "_gherkin2robotframework on " + now.Format(time.RFC3339) + "_"
}

// Script serializes the translated feature into the .robot file content.
// Section order is fixed: Settings (with the external settings inclusion
// point), the resource reference, feature metadata, Test Cases, and
// Keywords only when non-empty. A Language header leads when the active
// language is not the default.
func (c *Context) Script(opts ScriptOptions) []byte {
	var b robot.Builder

	if lang := c.Provider.Language(); lang != translation.DefaultLanguage {
		b.Add(robot.Text("Language: "+lang), robot.Blank)
	}

	b.Add(robot.Text(c.tr("settings_section", "*** Settings ***")))
	if opts.Settings != nil {
		b.Raw(opts.Settings)
		b.Add(robot.Blank)
	}
	b.AddSection(&c.Settings)
	// The ./ prefix keeps IDE Robot Framework plugins resolving the
	// resource relative to the script.
	b.Add(robot.Fields(c.tr("resource", "Resource"), "./"+opts.ResourceFile))
	metadata := c.tr("metadata", "Metadata")
	b.Add(robot.Fields(metadata, "Feature", opts.FeatureName))
	b.Add(robot.Fields(metadata, "Generated by", GeneratedBy(opts.Now)))
	b.Add(robot.Blank)

	b.Add(robot.Text(c.tr("testcases_section", "*** Test Cases ***")))
	b.AddSection(&c.TestCases)
	b.Add(robot.Blank)

	if !c.Keywords.Empty() {
		b.Add(robot.Text(c.tr("keywords_section", "*** Keywords ***")))
		b.AddSection(&c.Keywords)
		b.Add(robot.Blank)
	}

	return b.Bytes()
}
