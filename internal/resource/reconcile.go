package resource

import (
	"strings"
	"time"

	"github.com/fabioluissilva/gherkin2robotframework/internal/robot"
	"github.com/fabioluissilva/gherkin2robotframework/internal/translation"
	"github.com/fabioluissilva/gherkin2robotframework/internal/transpiler"
)

// Reconciler matches the step registry of one translation run against a
// step-definition resource.
type Reconciler struct {
	provider *translation.Provider
	matcher  Matcher
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithMatcher substitutes the matching strategy.
func WithMatcher(m Matcher) Option {
	return func(r *Reconciler) { r.matcher = m }
}

// NewReconciler creates a reconciler using the regex matching strategy
// unless overridden.
func NewReconciler(provider *translation.Provider, opts ...Option) *Reconciler {
	r := &Reconciler{provider: provider, matcher: RegexMatcher{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BuildOptions configures serialization of a newly created resource.
type BuildOptions struct {
	Settings []byte    // merged resource.settings content, may be nil
	Now      time.Time // generation timestamp
}

// BuildResource renders the content of a fresh resource file: one failing
// stub per registered step, in registration order. Every referenced step
// runs (and fails clearly) before a human implements it.
func (r *Reconciler) BuildResource(registry *transpiler.StepRegistry, opts BuildOptions) []byte {
	var b robot.Builder

	if lang := r.provider.Language(); lang != translation.DefaultLanguage {
		b.Add(robot.Text("Language: "+lang), robot.Blank)
	}

	b.Add(robot.Text(r.provider.Tr("settings_section", "*** Settings ***")))
	if opts.Settings != nil {
		b.Raw(opts.Settings)
		b.Add(robot.Blank)
	}
	b.Add(robot.Fields(r.provider.Tr("documentation", "Documentation"), "Generated by", transpiler.GeneratedBy(opts.Now)))
	// Collections backs the Create Dictionary / Append To List calls in
	// generated data-table code.
	b.Add(robot.Fields(r.provider.Tr("library", "Library"), "Collections"))
	b.Add(robot.Blank)

	b.Add(robot.Text(r.provider.Tr("keywords_section", "*** Keywords ***")))
	for _, entry := range registry.Entries() {
		b.Add(robot.Text(entry.Text))
		for _, line := range r.stubLines(entry) {
			b.Add(line)
		}
		b.Add(robot.Blank)
	}

	return b.Bytes()
}

// Stub is a missing keyword and its ready-to-paste implementation lines.
type Stub struct {
	Keyword string
	Lines   []robot.Line
}

// Render returns the stub as pastable text, keyword name first.
func (s Stub) Render() string {
	parts := []string{s.Keyword}
	for _, line := range s.Lines {
		parts = append(parts, line.String())
	}
	return strings.Join(parts, "\n")
}

// MissingKeywords parses an existing resource and returns the registered
// steps no keyword in it satisfies, in registration order. The existing
// file is never modified; the result is report material only.
func (r *Reconciler) MissingKeywords(existing []byte, registry *transpiler.StepRegistry) []Stub {
	templates := ParseKeywords(existing, r.provider)

	var missing []Stub
	for _, entry := range registry.Entries() {
		if r.satisfied(templates, entry.Text) {
			continue
		}
		missing = append(missing, Stub{Keyword: entry.Text, Lines: r.stubLines(entry)})
	}
	return missing
}

func (r *Reconciler) satisfied(templates []Template, step string) bool {
	for _, template := range templates {
		if r.matcher.Matches(template, step) {
			return true
		}
	}
	return false
}

func (r *Reconciler) stubLines(entry transpiler.StepEntry) []robot.Line {
	var lines []robot.Line
	if entry.Argument != "" {
		lines = append(lines, robot.Fields("", "["+r.provider.Tr("arguments", "Arguments")+"]", entry.Argument))
	}
	lines = append(lines, robot.Fields("", "Fail", `Keyword "`+entry.Text+`" Not Implemented Yet`))
	return lines
}
