package transpiler

// StepEntry is one canonical step collected during translation, together
// with the variable holding its doc-string or data-table argument ("" when
// the step carries none).
type StepEntry struct {
	Text     string
	Argument string
}

// StepRegistry collects canonical step texts in insertion order. It lives
// for one feature file; re-registering a text is a no-op (first definition
// wins).
type StepRegistry struct {
	order []string
	args  map[string]string
}

// NewStepRegistry returns an empty registry.
func NewStepRegistry() *StepRegistry {
	return &StepRegistry{args: make(map[string]string)}
}

// Register records a canonical step text and its argument variable unless
// the text is already present.
func (r *StepRegistry) Register(text, argument string) {
	if _, seen := r.args[text]; seen {
		return
	}
	r.order = append(r.order, text)
	r.args[text] = argument
}

// Entries returns the registered steps in insertion order.
func (r *StepRegistry) Entries() []StepEntry {
	entries := make([]StepEntry, 0, len(r.order))
	for _, text := range r.order {
		entries = append(entries, StepEntry{Text: text, Argument: r.args[text]})
	}
	return entries
}

// Len returns the number of registered steps.
func (r *StepRegistry) Len() int {
	return len(r.order)
}
