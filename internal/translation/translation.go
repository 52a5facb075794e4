// Package translation maps canonical section and keyword names to their
// language-specific Robot Framework literals, and exposes the recognized
// Gherkin keyword synonyms per language as typed sets.
package translation

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yml
var languagesYAML []byte

// DefaultLanguage is used when a feature file declares no language.
const DefaultLanguage = "en"

type table struct {
	Literals map[string]string   `yaml:"literals"`
	Synonyms map[string][]string `yaml:"synonyms"`
}

var tables = mustParseTables(languagesYAML)

func mustParseTables(data []byte) map[string]table {
	var t map[string]table
	if err := yaml.Unmarshal(data, &t); err != nil {
		panic(fmt.Sprintf("translation: malformed languages.yml: %v", err))
	}
	if _, ok := t[DefaultLanguage]; !ok {
		panic("translation: languages.yml is missing the default language")
	}
	return t
}

// Provider resolves literals and synonym sets for one language. Providers
// are immutable; build one per feature file with For.
type Provider struct {
	lang     string
	literals map[string]string
	synonyms map[string]map[string]struct{}
}

// Default returns the provider for the default language.
func Default() *Provider {
	p, _ := For(DefaultLanguage)
	return p
}

// For returns the provider for lang. Unknown languages fall back to the
// default; the second return value reports whether lang was recognized.
// Region subtags ("nl-BE") fall back to their base language.
func For(lang string) (*Provider, bool) {
	t, ok := tables[lang]
	if !ok {
		if base, _, found := strings.Cut(lang, "-"); found {
			if bt, bok := tables[base]; bok {
				return newProvider(base, bt), true
			}
		}
		return newProvider(DefaultLanguage, tables[DefaultLanguage]), false
	}
	return newProvider(lang, t), true
}

func newProvider(lang string, t table) *Provider {
	p := &Provider{
		lang:     lang,
		literals: t.Literals,
		synonyms: make(map[string]map[string]struct{}, len(t.Synonyms)),
	}
	// Recognition sets always include the English spellings: Gherkin
	// accepts them in any dialect.
	en := tables[DefaultLanguage]
	for key := range en.Synonyms {
		set := make(map[string]struct{})
		for _, s := range en.Synonyms[key] {
			set[s] = struct{}{}
		}
		for _, s := range t.Synonyms[key] {
			set[s] = struct{}{}
		}
		p.synonyms[key] = set
	}
	return p
}

// Language returns the provider's language code.
func (p *Provider) Language() string {
	return p.lang
}

// Tr returns the literal for a canonical key, or fallback when the key has
// no entry in the active language.
func (p *Provider) Tr(key, fallback string) string {
	if v, ok := p.literals[key]; ok {
		return v
	}
	return fallback
}

// Synonyms returns the recognized spellings for a canonical Gherkin
// keyword ("scenario", "scenariooutline", "continuation"). The returned
// set is shared; callers must not mutate it.
func (p *Provider) Synonyms(key string) map[string]struct{} {
	return p.synonyms[key]
}

// Recognizes reports whether keyword is a recognized spelling of the
// canonical Gherkin keyword key.
func (p *Provider) Recognizes(key, keyword string) bool {
	_, ok := p.synonyms[key][strings.TrimSpace(keyword)]
	return ok
}

// IsContinuation reports whether a step keyword is a continuation marker
// ("And"/"But"/"*" or a localized spelling).
func (p *Provider) IsContinuation(keyword string) bool {
	return p.Recognizes("continuation", keyword)
}

// Verb translates a step keyword ("Given ", "When ", ...) into the
// language's verb, with a single trailing space ready for concatenation.
// Unknown keywords pass through unchanged.
func (p *Provider) Verb(keyword string) string {
	trimmed := strings.TrimSpace(keyword)
	if v, ok := p.literals[trimmed]; ok {
		return v + " "
	}
	return trimmed + " "
}
