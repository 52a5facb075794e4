// Package resource reconciles the steps collected during translation
// against the feature's step-definition resource file: it creates a new
// resource with failing stubs, or reports which keywords an existing
// resource is missing without ever modifying it.
package resource

import (
	"regexp"
	"strings"

	"github.com/fabioluissilva/gherkin2robotframework/internal/translation"
)

// variablePattern matches Robot Framework variable placeholders inside a
// keyword name.
var variablePattern = regexp.MustCompile(`\$\{[0-9a-zA-Z_]+\}`)

// Template is a keyword parsed from an existing resource file: its literal
// name and the match pattern derived from it, with every ${identifier}
// placeholder widened to a wildcard capture.
type Template struct {
	Literal string
	Pattern *regexp.Regexp
}

// NewTemplate compiles the match pattern for a keyword literal. Literal
// segments are quoted; the pattern is anchored at the start only, matching
// the prefix semantics the reconciler has always had. A literal without
// placeholders compiles to itself, so matching collapses to string
// comparison.
func NewTemplate(literal string) Template {
	var b strings.Builder
	b.WriteString("^")
	last := 0
	for _, loc := range variablePattern.FindAllStringIndex(literal, -1) {
		b.WriteString(regexp.QuoteMeta(literal[last:loc[0]]))
		b.WriteString("(.*)")
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(literal[last:]))
	return Template{Literal: literal, Pattern: regexp.MustCompile(b.String())}
}

// Matcher decides whether an existing keyword template satisfies a
// canonical step text. The match rule is deliberately asymmetric: the new
// step is always a literal at generation time, only the existing keyword
// may be parameterized.
type Matcher interface {
	Matches(template Template, step string) bool
}

// RegexMatcher is the default, best-effort matching strategy: literal
// equality, or a match of the template's placeholder-derived pattern.
type RegexMatcher struct{}

// Matches implements Matcher.
func (RegexMatcher) Matches(template Template, step string) bool {
	if step == template.Literal {
		return true
	}
	return template.Pattern.MatchString(step)
}

// ParseKeywords extracts the keyword templates from an existing resource
// file. Keyword names are the non-indented, non-blank lines following the
// Keywords section header (English or localized).
func ParseKeywords(content []byte, provider *translation.Provider) []Template {
	var templates []Template
	localized := provider.Tr("keywords_section", "*** Keywords ***")

	inKeywords := false
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !inKeywords {
			if strings.HasPrefix(line, "*** Keywords ***") || strings.HasPrefix(line, localized) {
				inKeywords = true
			}
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			continue
		}
		templates = append(templates, NewTemplate(strings.TrimSpace(line)))
	}
	return templates
}
