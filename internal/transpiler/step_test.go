package transpiler

import (
	"testing"

	messages "github.com/cucumber/messages/go/v21"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabioluissilva/gherkin2robotframework/internal/robot"
	"github.com/fabioluissilva/gherkin2robotframework/internal/translation"
)

func TestSubstitutePlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"single placeholder", "the value is <amount>", "the value is ${amount}"},
		{"multiple placeholders", "<first> pays <second>", "${first} pays ${second}"},
		{"no placeholders", "a user exists", "a user exists"},
		{"comparison stays literal", "a < b and b > c", "a < b and b > c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, substitutePlaceholders(tt.text))
		})
	}
}

func TestAddStepVerbPrefix(t *testing.T) {
	c := NewContext(translation.Default())
	var section robot.Section

	c.addStep(&section, &messages.Step{Keyword: "Given ", Text: "a user exists"})

	entries := c.Registry.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Given a user exists", entries[0].Text)
	assert.Equal(t, "", entries[0].Argument)

	require.Len(t, section.Lines(), 1)
	assert.Equal(t, "    Given a user exists", section.Lines()[0].String())
}

func TestAddStepContinuationStripsVerbFromRegistryOnly(t *testing.T) {
	c := NewContext(translation.Default())
	var section robot.Section

	c.addStep(&section, &messages.Step{Keyword: "And ", Text: "the session is kept"})

	entries := c.Registry.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "the session is kept", entries[0].Text)

	// the emitted call line keeps the human verb
	assert.Equal(t, "    And the session is kept", section.Lines()[0].String())
}

func TestAddStepStarKeyword(t *testing.T) {
	c := NewContext(translation.Default())
	var section robot.Section

	c.addStep(&section, &messages.Step{Keyword: "* ", Text: "cleanup runs"})

	assert.Equal(t, "cleanup runs", c.Registry.Entries()[0].Text)
	assert.Equal(t, "    cleanup runs", section.Lines()[0].String())
}

func TestAddStepRegistersArgumentVariable(t *testing.T) {
	c := NewContext(translation.Default())
	var section robot.Section

	c.addStep(&section, &messages.Step{
		Keyword: "When ",
		Text:    "the payload is posted",
		DocString: &messages.DocString{
			Content: "line one\n\nline three",
		},
	})

	entries := c.Registry.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "When the payload is posted", entries[0].Text)
	assert.Equal(t, "${DocString}", entries[0].Argument)

	// construction lines precede the call line, which carries the variable
	lines := section.Lines()
	last := lines[len(lines)-1].String()
	assert.Equal(t, "    When the payload is posted    ${DocString}", last)
}

func TestRegistryFirstDefinitionWins(t *testing.T) {
	r := NewStepRegistry()
	r.Register("Given a user exists", "")
	r.Register("Given a user exists", "@{DataTable}")
	r.Register("When the user logs in", "")

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Given a user exists", entries[0].Text)
	assert.Equal(t, "", entries[0].Argument)
	assert.Equal(t, "When the user logs in", entries[1].Text)
	assert.Equal(t, 2, r.Len())
}
