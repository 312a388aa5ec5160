package fastfmt

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrBufferOverflow = errors.New("attempt to write past buffer")
	ErrUnencodable    = errors.New("rune not representable in encoding")
)

// Writer is a destination for rendered text.
//
// A Writer that returned an error is in an unspecified state and must not be
// written to again.
type Writer interface {
	// WriteRune writes a single character.
	WriteRune(r rune) error
	// SizeHint advises that roughly n more UTF-8 bytes are about to be
	// written. It is advisory and never fails, whichever way the hint is wrong.
	SizeHint(n int)
}

// StringWriter is implemented by writers with a bulk string write.
// Without it, [WriteString] writes rune by rune. The result must match
// the rune by rune one, so invalid UTF-8 is written as U+FFFD per bad byte.
type StringWriter interface {
	WriteString(s string) error
}

// HintUser reports whether a writer benefits from [Writer.SizeHint].
// Without it, the writer is assumed not to, and callers may skip computing
// estimates.
type HintUser interface {
	UsesSizeHint() bool
}

// WriteString writes s to w, using the bulk write when w has one.
func WriteString(w Writer, s string) error {
	if sw, ok := w.(StringWriter); ok {
		return sw.WriteString(s)
	}
	for _, r := range s {
		if err := w.WriteRune(r); err != nil {
			return err
		}
	}
	return nil
}

// UsesSizeHint reports whether w wants size hints.
func UsesSizeHint(w Writer) bool {
	if h, ok := w.(HintUser); ok {
		return h.UsesSizeHint()
	}
	return false
}
