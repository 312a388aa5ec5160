package fastfmt

import "github.com/mattn/go-runewidth"

// Truncate drops everything after the given number of terminal columns.
// Column widths come from go-runewidth, so wide characters count twice.
//
// Truncate keeps count across writes. Use a fresh one, or call Reset, per
// output.
type Truncate struct {
	width int
	used  int
	done  bool
}

// NewTruncate returns a Truncate that lets width columns through.
func NewTruncate(width int) *Truncate {
	return &Truncate{width: width}
}

func (t *Truncate) TransformRune(w Writer, r rune) error {
	if t.done {
		return nil
	}
	rw := runewidth.RuneWidth(r)
	if t.used+rw > t.width {
		// A narrower rune later on must not slip into the gap.
		t.done = true
		return nil
	}
	t.used += rw
	return w.WriteRune(r)
}

// TransformSizeHint returns n: truncation only ever shrinks output.
func (t *Truncate) TransformSizeHint(n int) int { return n }

// Used returns the number of columns written so far.
func (t *Truncate) Used() int { return t.used }

// Reset clears the column count.
func (t *Truncate) Reset() {
	t.used = 0
	t.done = false
}
