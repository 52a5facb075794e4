package transpiler

import (
	"strings"
	"testing"

	messages "github.com/cucumber/messages/go/v21"
	"github.com/stretchr/testify/assert"

	"github.com/fabioluissilva/gherkin2robotframework/internal/robot"
	"github.com/fabioluissilva/gherkin2robotframework/internal/translation"
)

func row(values ...string) *messages.TableRow {
	cells := make([]*messages.TableCell, 0, len(values))
	for _, v := range values {
		cells = append(cells, &messages.TableCell{Value: v})
	}
	return &messages.TableRow{Cells: cells}
}

func sectionText(s *robot.Section) []string {
	lines := make([]string, 0, len(s.Lines()))
	for _, l := range s.Lines() {
		lines = append(lines, l.String())
	}
	return lines
}

func TestAddDocString(t *testing.T) {
	c := NewContext(translation.Default())
	var section robot.Section

	ref := c.addDocString(&section, &messages.DocString{Content: "first\n\nthird"})

	assert.Equal(t, "${DocString}", ref)
	assert.Equal(t, []string{
		`    ${DocString}=    Catenate    SEPARATOR=\n`,
		"    ...    first",
		"    ...    ${EMPTY}",
		"    ...    third",
	}, sectionText(&section))
}

func TestAddDataTable(t *testing.T) {
	c := NewContext(translation.Default())
	var section robot.Section

	table := &messages.DataTable{Rows: []*messages.TableRow{
		row("BSN", "NAME"),
		row("1", "Jan"),
		row("2", "Piet"),
		row("3", "Klaas"),
	}}
	ref := c.addDataTable(&section, table)

	assert.Equal(t, "@{DataTable}", ref)
	assert.Equal(t, []string{
		"    ${DataTable}=    Create List",
		"    FOR    ${BSN}    ${NAME}    IN",
		"    ...    1    Jan",
		"    ...    2    Piet",
		"    ...    3    Klaas",
		"        ${entry}=    Create Dictionary    BSN=${BSN}    NAME=${NAME}",
		"        Append To List    ${DataTable}    ${entry}",
		"    END",
	}, sectionText(&section))
}

// The generated construct's length tracks column count; rows only add
// continuation lines, one per data row.
func TestDataTableShapePreservation(t *testing.T) {
	c := NewContext(translation.Default())
	var section robot.Section

	table := &messages.DataTable{Rows: []*messages.TableRow{
		row("a", "b", "c"),
		row("1", "2", "3"),
		row("4", "5", "6"),
		row("7", "8", "9"),
	}}
	c.addDataTable(&section, table)

	continuations := 0
	for _, line := range sectionText(&section) {
		if strings.HasPrefix(line, "    ...") {
			continuations++
		}
	}
	assert.Equal(t, 3, continuations, "one continuation line per data row, header excluded")
}

func TestAddDataTableEmpty(t *testing.T) {
	c := NewContext(translation.Default())
	var section robot.Section

	ref := c.addDataTable(&section, &messages.DataTable{})

	assert.Empty(t, ref)
	assert.Empty(t, section.Lines())
}
