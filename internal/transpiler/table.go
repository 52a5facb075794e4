package transpiler

import (
	"strings"

	messages "github.com/cucumber/messages/go/v21"

	"github.com/fabioluissilva/gherkin2robotframework/internal/robot"
)

// emptyValue is Robot Framework's token for an explicitly empty cell or
// line. A bare empty field would be swallowed by the field separator.
const emptyValue = "${EMPTY}"

// makeEmpty replaces an empty cell value with the explicit empty token.
func makeEmpty(v string) string {
	if v == "" {
		return emptyValue
	}
	return v
}

// addDocString emits lines building the step's doc-string as a single
// string variable, one Catenate continuation per source line, and returns
// the variable reference. Blank lines become ${EMPTY} so the line count
// survives the round trip.
func (c *Context) addDocString(section *robot.Section, doc *messages.DocString) string {
	section.Append(robot.Fields("", "${DocString}=", "Catenate", `SEPARATOR=\n`))
	for _, line := range strings.Split(doc.Content, "\n") {
		section.Append(robot.Fields("", "...", makeEmpty(line)))
	}
	return "${DocString}"
}

// addDataTable emits lines building the step's data table as a list of
// dictionaries keyed by the header row, and returns the list reference.
//
// The rows are fed to a FOR/IN construct so the generated text grows with
// the table's width, not its height; the per-row dictionaries are
// materialized by Robot Framework at run time:
//
//	${DataTable}=    Create List
//	FOR    ${BSN}    ${NAME}    IN
//	...    1    Jan
//	...    2    Piet
//	    ${entry}=    Create Dictionary    BSN=${BSN}    NAME=${NAME}
//	    Append To List    ${DataTable}    ${entry}
//	END
func (c *Context) addDataTable(section *robot.Section, table *messages.DataTable) string {
	rows := tableValues(table)
	if len(rows) == 0 {
		return ""
	}
	header := rows[0]

	section.Append(robot.Fields("", "${DataTable}=", "Create List"))

	forLine := []string{"", "FOR"}
	for _, col := range header {
		forLine = append(forLine, "${"+col+"}")
	}
	forLine = append(forLine, "IN")
	section.Append(robot.Fields(forLine...))

	for _, row := range rows[1:] {
		section.Append(robot.Fields(append([]string{"", "..."}, row...)...))
	}

	entry := []string{"", "", "${entry}=", "Create Dictionary"}
	for _, col := range header {
		entry = append(entry, col+"=${"+col+"}")
	}
	section.Append(robot.Fields(entry...))
	section.Append(robot.Fields("", "", "Append To List", "${DataTable}", "${entry}"))
	section.Append(robot.Fields("", "END"))

	return "@{DataTable}"
}

// tableValues flattens a data table into its cell values, row by row.
func tableValues(table *messages.DataTable) [][]string {
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cell.Value)
		}
		rows = append(rows, cells)
	}
	return rows
}
