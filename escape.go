package fastfmt

import "strings"

const htmlSpecial = `&'<>"`

// HTMLEscape escapes the characters html.EscapeString escapes:
// <, >, &, ' and ".
type HTMLEscape struct{}

func (HTMLEscape) TransformRune(w Writer, r rune) error {
	if e := htmlEntity(r); e != "" {
		return WriteString(w, e)
	}
	return w.WriteRune(r)
}

func (HTMLEscape) TransformString(w Writer, s string) error {
	for {
		i := strings.IndexAny(s, htmlSpecial)
		if i < 0 {
			break
		}
		if i > 0 {
			if err := WriteString(w, s[:i]); err != nil {
				return err
			}
		}
		if err := WriteString(w, htmlEntity(rune(s[i]))); err != nil {
			return err
		}
		s = s[i+1:]
	}
	if s == "" {
		return nil
	}
	return WriteString(w, s)
}

// TransformSizeHint allows for every byte becoming the longest entity.
func (HTMLEscape) TransformSizeHint(n int) int { return 5 * n }

func htmlEntity(r rune) string {
	switch r {
	case '&':
		return "&amp;"
	case '\'':
		return "&#39;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&#34;"
	default:
		return ""
	}
}
