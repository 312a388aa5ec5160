package fastfmt

import "encoding/json"

// Indented controls JSON and YAML indentation.
// Without it, JSON is compact and YAML uses its default indent.
type Indented interface {
	Indent() string
}

// JSON renders its value as a JSON document followed by a newline.
// The estimate is zero: the encoding is not known until it is written.
type JSON[T any] struct {
	Value T
}

func (j JSON[T]) Render(w Writer, _ Display) error {
	enc := json.NewEncoder(NewIOWriter(w))
	enc.SetEscapeHTML(false)
	if ind, ok := any(j.Value).(Indented); ok {
		enc.SetIndent("", ind.Indent())
	}
	return enc.Encode(j.Value)
}

func (JSON[T]) SizeEstimate(Display) int { return 0 }
