package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForKnownLanguage(t *testing.T) {
	p, known := For("nl")
	require.True(t, known)
	assert.Equal(t, "nl", p.Language())
	assert.Equal(t, "*** Instellingen ***", p.Tr("settings_section", "*** Settings ***"))
}

func TestForUnknownLanguageFallsBack(t *testing.T) {
	p, known := For("xx")
	assert.False(t, known)
	assert.Equal(t, DefaultLanguage, p.Language())
}

func TestForRegionSubtag(t *testing.T) {
	p, known := For("nl-BE")
	require.True(t, known)
	assert.Equal(t, "nl", p.Language())
}

func TestTrFallback(t *testing.T) {
	p := Default()
	assert.Equal(t, "Metadata", p.Tr("metadata", "Metadata"))
	assert.Equal(t, "whatever", p.Tr("no_such_key", "whatever"))
}

func TestSynonymsIncludeEnglish(t *testing.T) {
	p, known := For("de")
	require.True(t, known)

	assert.True(t, p.Recognizes("scenario", "Szenario"))
	assert.True(t, p.Recognizes("scenario", "Scenario"))
	assert.True(t, p.Recognizes("scenariooutline", "Szenariogrundriss"))
	assert.True(t, p.Recognizes("scenariooutline", "Scenario Outline"))
	assert.False(t, p.Recognizes("scenario", "Szenariogrundriss"))
}

func TestIsContinuation(t *testing.T) {
	p := Default()
	assert.True(t, p.IsContinuation("And "))
	assert.True(t, p.IsContinuation("But "))
	assert.True(t, p.IsContinuation("* "))
	assert.False(t, p.IsContinuation("Given "))

	nl, _ := For("nl")
	assert.True(t, nl.IsContinuation("En "))
	assert.True(t, nl.IsContinuation("Maar "))
}

func TestVerb(t *testing.T) {
	p := Default()
	assert.Equal(t, "Given ", p.Verb("Given "))

	fr, _ := For("fr")
	assert.Equal(t, "Étant donné ", fr.Verb("Given "))

	// unknown keywords pass through with a trailing space
	assert.Equal(t, "Soit ", p.Verb("Soit "))
}
