package transpiler

import (
	"regexp"
	"strings"

	messages "github.com/cucumber/messages/go/v21"

	"github.com/fabioluissilva/gherkin2robotframework/internal/robot"
)

// placeholderPattern matches Gherkin outline placeholders (<name>).
var placeholderPattern = regexp.MustCompile(`<([A-Za-z0-9_]+)>`)

// substitutePlaceholders rewrites outline placeholder syntax into Robot
// Framework variable syntax: <amount> becomes ${amount}.
func substitutePlaceholders(text string) string {
	return placeholderPattern.ReplaceAllString(text, `${$1}`)
}

// addStep renders one step into the given section and registers its
// canonical text.
//
// The registry key drops the verb for continuation keywords (And/But/*),
// so a step chain shares one keyword definition regardless of how it is
// introduced. The emitted call line always keeps the human verb, except
// for the bare "*" marker which has none.
func (c *Context) addStep(section *robot.Section, step *messages.Step) {
	text := substitutePlaceholders(step.Text)

	canonical := text
	if !c.Provider.IsContinuation(step.Keyword) {
		canonical = c.Provider.Verb(step.Keyword) + text
	}

	call := text
	if strings.TrimSpace(step.Keyword) != "*" {
		call = c.Provider.Verb(step.Keyword) + text
	}

	var argument string
	switch {
	case step.DocString != nil:
		argument = c.addDocString(section, step.DocString)
	case step.DataTable != nil:
		argument = c.addDataTable(section, step.DataTable)
	}

	c.Registry.Register(canonical, argument)

	if argument != "" {
		section.Append(robot.Fields("", call, argument))
	} else {
		section.Append(robot.Fields("", call))
	}
}
