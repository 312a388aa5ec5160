package fastfmt

import "unicode/utf8"

// Text renders a string verbatim under strategy S.
type Text[S any] string

// Str is text rendered under [Display].
type Str = Text[Display]

func (t Text[S]) Render(w Writer, _ S) error { return WriteString(w, string(t)) }

// SizeEstimate returns the byte length of t once each invalid byte is
// replaced by U+FFFD, which is how every writer renders it.
func (t Text[S]) SizeEstimate(S) int { return utf8Len(string(t)) }

// Char renders a single character under strategy S.
type Char[S any] rune

// Rune is a character rendered under [Display].
type Rune = Char[Display]

func (c Char[S]) Render(w Writer, _ S) error { return w.WriteRune(rune(c)) }

// SizeEstimate returns the UTF-8 length of c. Invalid runes count as the
// replacement character they are written as.
func (c Char[S]) SizeEstimate(S) int {
	if n := utf8.RuneLen(rune(c)); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

// utf8Len returns the length of s after invalid bytes become U+FFFD.
func utf8Len(s string) int {
	if utf8.ValidString(s) {
		return len(s)
	}
	n := 0
	for _, r := range s {
		n += utf8.RuneLen(r)
	}
	return n
}
