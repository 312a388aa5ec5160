package fastfmt

import "fmt"

// Stringer renders a fmt.Stringer under [Display]. String is called once
// per render; the estimate is zero.
type Stringer struct {
	fmt.Stringer
}

func (s Stringer) Render(w Writer, _ Display) error {
	return WriteString(w, s.String())
}

func (Stringer) SizeEstimate(Display) int { return 0 }

// Formatted adapts a display renderable to fmt.Stringer and fmt.Formatter,
// so it can be passed to the fmt package.
type Formatted struct {
	Value Renderable[Display]
}

func (f Formatted) String() string { return String(f.Value) }

// Format writes the rendering to st. Verbs, flags, width and precision
// are ignored.
func (f Formatted) Format(st fmt.State, _ rune) {
	enc := NewEncoder(st, UTF8)
	err := f.Value.Render(enc, StdDisplay)
	_ = enc.Flush()
	if err != nil {
		fmt.Fprintf(st, "%%!(fastfmt=%v)", err)
	}
}
