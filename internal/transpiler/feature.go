package transpiler

import (
	"fmt"
	"strings"

	messages "github.com/cucumber/messages/go/v21"

	"github.com/fabioluissilva/gherkin2robotframework/internal/robot"
	"github.com/fabioluissilva/gherkin2robotframework/internal/translation"
)

// Translate walks a parsed feature and fills a fresh Context with the
// Settings, Test Cases and Keywords sections plus the step registry.
//
// The returned error is a *StructuralError when the tree contains a child
// or scenario keyword shape the translator does not recognize.
func Translate(feature *messages.Feature, provider *translation.Provider) (*Context, error) {
	if feature == nil {
		return nil, structuralErrorf("document has no feature")
	}

	c := NewContext(provider)

	if desc := strings.TrimSpace(feature.Description); desc != "" {
		lines := strings.Split(desc, "\n")
		c.Settings.Append(robot.Fields(c.tr("documentation", "Documentation"), lines[0]))
		for _, line := range lines[1:] {
			c.Settings.Append(robot.Fields("...", line))
		}
	}

	if len(feature.Tags) > 0 {
		fields := []string{c.tr("testtags", "Test Tags")}
		fields = append(fields, tagNames(feature.Tags)...)
		c.Settings.Append(robot.Fields(fields...))
	}

	for _, child := range feature.Children {
		switch {
		case child.Background != nil:
			c.background(child.Background)
		case child.Scenario != nil:
			if err := c.scenario(child.Scenario); err != nil {
				return nil, err
			}
		default:
			return nil, structuralErrorf("unrecognized feature child at line %d", childLine(child))
		}
	}

	return c, nil
}

func (c *Context) background(bg *messages.Background) {
	c.backgroundAvailable = true

	c.Keywords.Append(robot.Text(c.tr("background", "Background")))
	if bg.Name != "" {
		c.Keywords.Append(robot.Fields("", "["+c.tr("documentation", "Documentation")+"]", bg.Name))
	}
	for _, step := range bg.Steps {
		c.addStep(&c.Keywords, step)
	}
	c.Keywords.Append(robot.Blank)
}

func (c *Context) scenario(sc *messages.Scenario) error {
	switch {
	case c.Provider.Recognizes("scenariooutline", sc.Keyword):
		c.scenarioOutline(sc)
	case c.Provider.Recognizes("scenario", sc.Keyword):
		c.plainScenario(sc)
	default:
		return structuralErrorf("unrecognized scenario keyword: %s", sc.Keyword)
	}
	return nil
}

func (c *Context) plainScenario(sc *messages.Scenario) {
	c.TestCases.Append(robot.Text(sc.Name))
	c.addTestCaseDocumentation(sc.Description)
	if len(sc.Tags) > 0 {
		c.addTags(sc.Tags)
	}

	if c.backgroundAvailable {
		c.TestCases.Append(robot.Fields("", c.tr("background", "Background")))
	}
	for _, step := range sc.Steps {
		c.addStep(&c.TestCases, step)
	}
	c.TestCases.Append(robot.Blank)
}

// scenarioOutline expands an outline into one templated test case per
// examples block plus a single synthesized keyword shared by all of them.
func (c *Context) scenarioOutline(sc *messages.Scenario) {
	placeholders := collectPlaceholders(sc.Steps)
	outlineKeyword := c.tr("scenariooutline", "Scenario Outline") + " " + sc.Name

	var header []string
	for _, example := range sc.Examples {
		name := exampleTestCaseName(sc, example)
		c.TestCases.Append(robot.Text(name))
		c.addTestCaseDocumentation(example.Description)

		tags := append(append([]*messages.Tag{}, sc.Tags...), example.Tags...)
		if len(tags) > 0 {
			c.addTags(tags)
		}

		c.TestCases.Append(robot.Fields("", "["+c.tr("template", "Template")+"]", outlineKeyword))

		if example.TableHeader == nil {
			c.warn(ValidationWarning{Example: example.Name, Placeholder: strings.Join(placeholders, ", ")})
			c.TestCases.Append(robot.Blank)
			continue
		}

		blockHeader := rowValues(example.TableHeader)
		if header == nil {
			header = blockHeader
		}
		for _, placeholder := range placeholders {
			if !contains(blockHeader, placeholder) {
				c.warn(ValidationWarning{Example: example.Name, Placeholder: placeholder})
			}
		}

		for _, row := range example.TableBody {
			fields := []string{""}
			for _, value := range rowValues(row) {
				fields = append(fields, makeEmpty(value))
			}
			c.TestCases.Append(robot.Fields(fields...))
		}
		c.TestCases.Append(robot.Blank)
	}

	c.Keywords.Append(robot.Text(outlineKeyword))
	c.addKeywordDocumentation(sc.Description)
	if len(header) > 0 {
		fields := []string{"", "[" + c.tr("arguments", "Arguments") + "]"}
		for _, col := range header {
			fields = append(fields, "${"+col+"}")
		}
		c.Keywords.Append(robot.Fields(fields...))
	}
	if c.backgroundAvailable {
		c.Keywords.Append(robot.Fields("", c.tr("background", "Background")))
	}
	for _, step := range sc.Steps {
		c.addStep(&c.Keywords, step)
	}
	c.Keywords.Append(robot.Blank)
}

// exampleTestCaseName derives a test case name from the block's explicit
// name, falling back to the block's source line.
func exampleTestCaseName(sc *messages.Scenario, example *messages.Examples) string {
	if example.Name != "" {
		return sc.Name + ": " + example.Name
	}
	var line int64
	if example.Location != nil {
		line = example.Location.Line
	}
	return fmt.Sprintf("%s example line %d", sc.Name, line)
}

// collectPlaceholders gathers the distinct <name> placeholders referenced
// by the outline's steps, in order of first appearance.
func collectPlaceholders(steps []*messages.Step) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, step := range steps {
		for _, match := range placeholderPattern.FindAllStringSubmatch(step.Text, -1) {
			if _, ok := seen[match[1]]; ok {
				continue
			}
			seen[match[1]] = struct{}{}
			names = append(names, match[1])
		}
	}
	return names
}

func (c *Context) addTestCaseDocumentation(description string) {
	c.addDocumentation(&c.TestCases, description)
}

func (c *Context) addKeywordDocumentation(description string) {
	c.addDocumentation(&c.Keywords, description)
}

func (c *Context) addDocumentation(section *robot.Section, description string) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return
	}
	lines := strings.Split(desc, "\n")
	section.Append(robot.Fields("", "["+c.tr("documentation", "Documentation")+"]", lines[0]))
	for _, line := range lines[1:] {
		section.Append(robot.Fields("", "...", strings.TrimSpace(line)))
	}
}

func (c *Context) addTags(tags []*messages.Tag) {
	fields := []string{"", "[" + c.tr("tags", "Tags") + "]"}
	fields = append(fields, tagNames(tags)...)
	c.TestCases.Append(robot.Fields(fields...))
}

// tagNames strips the leading @ from tag names.
func tagNames(tags []*messages.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, strings.TrimPrefix(tag.Name, "@"))
	}
	return names
}

func rowValues(row *messages.TableRow) []string {
	values := make([]string, 0, len(row.Cells))
	for _, cell := range row.Cells {
		values = append(values, cell.Value)
	}
	return values
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func childLine(child *messages.FeatureChild) int64 {
	if child.Rule != nil && child.Rule.Location != nil {
		return child.Rule.Location.Line
	}
	return 0
}
