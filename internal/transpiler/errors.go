package transpiler

import "fmt"

// StructuralError reports a parsed tree shape the translator does not
// recognize. It aborts processing of the current feature file.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return e.Msg
}

func structuralErrorf(format string, args ...any) *StructuralError {
	return &StructuralError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationWarning reports an outline placeholder that is absent from an
// example table's header. It is collected, not returned: generation
// continues with the columns that are present.
type ValidationWarning struct {
	Example     string
	Placeholder string
}

func (w ValidationWarning) Error() string {
	return fmt.Sprintf("example %q is missing column %q", w.Example, w.Placeholder)
}
