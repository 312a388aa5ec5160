package fastfmt

import (
	"unicode"
	"unicode/utf8"
)

// Upper maps text to upper case.
type Upper struct{}

func (Upper) TransformRune(w Writer, r rune) error {
	return w.WriteRune(unicode.ToUpper(r))
}

func (Upper) TransformString(w Writer, s string) error {
	return mapRunes(w, s, unicode.ToUpper)
}

func (Upper) TransformSizeHint(n int) int { return caseSizeHint(n) }

// Lower maps text to lower case.
type Lower struct{}

func (Lower) TransformRune(w Writer, r rune) error {
	return w.WriteRune(unicode.ToLower(r))
}

func (Lower) TransformString(w Writer, s string) error {
	return mapRunes(w, s, unicode.ToLower)
}

func (Lower) TransformSizeHint(n int) int { return caseSizeHint(n) }

// caseSizeHint bounds case mapping growth. A mapped rune never takes more
// than one and a half times its original byte length.
func caseSizeHint(n int) int {
	return n + (n+1)/2
}

// mapRunes writes s with fn applied to each rune. Runs of runes fn leaves
// alone are written in bulk.
func mapRunes(w Writer, s string, fn func(rune) rune) error {
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if m := fn(r); m != r {
			if start < i {
				if err := WriteString(w, s[start:i]); err != nil {
					return err
				}
			}
			if err := w.WriteRune(m); err != nil {
				return err
			}
			start = i + size
		}
		i += size
	}
	if start < len(s) {
		return WriteString(w, s[start:])
	}
	return nil
}
