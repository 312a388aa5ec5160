package fastfmt

import "gopkg.in/yaml.v3"

// YAML renders its value as a YAML document. Write failures surface as
// yaml's own errors, not the writer's.
type YAML[T any] struct {
	Value T
}

func (y YAML[T]) Render(w Writer, _ Display) error {
	enc := yaml.NewEncoder(NewIOWriter(w))
	if ind, ok := any(y.Value).(Indented); ok {
		enc.SetIndent(len(ind.Indent()))
	}
	if err := enc.Encode(y.Value); err != nil {
		return err
	}
	return enc.Close()
}

func (YAML[T]) SizeEstimate(Display) int { return 0 }
