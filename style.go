package fastfmt

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

const resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// Style is a terminal text style. Colors are converted to Profile, and the
// Ascii profile disables styling altogether.
type Style struct {
	Profile    termenv.Profile
	Foreground termenv.Color
	Background termenv.Color
	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
}

// NewStyle returns an empty Style for the color profile of out, as reported
// by the environment and terminal.
func NewStyle(out io.Writer) Style {
	return Style{Profile: termenv.NewOutput(out).EnvColorProfile()}
}

// Sequence returns the SGR parameters of the style, such as "1;31", or ""
// when the style changes nothing.
func (st Style) Sequence() string {
	if st.Profile == termenv.Ascii {
		return ""
	}
	var parts []string
	if seq := st.colorSequence(st.Foreground, false); seq != "" {
		parts = append(parts, seq)
	}
	if seq := st.colorSequence(st.Background, true); seq != "" {
		parts = append(parts, seq)
	}
	if st.Bold {
		parts = append(parts, termenv.BoldSeq)
	}
	if st.Faint {
		parts = append(parts, termenv.FaintSeq)
	}
	if st.Italic {
		parts = append(parts, termenv.ItalicSeq)
	}
	if st.Underline {
		parts = append(parts, termenv.UnderlineSeq)
	}
	return strings.Join(parts, ";")
}

func (st Style) colorSequence(c termenv.Color, bg bool) string {
	if c == nil {
		return ""
	}
	converted := st.Profile.Convert(c)
	if converted == nil {
		return ""
	}
	return converted.Sequence(bg)
}

// Styled renders a value between the escape sequences of a [Style].
type Styled[S any, V Renderable[S]] struct {
	value  V
	prefix string
}

// Paint returns v styled with st. The escape sequence is computed once here.
func Paint[S any, V Renderable[S]](v V, st Style) Styled[S, V] {
	var prefix string
	if seq := st.Sequence(); seq != "" {
		prefix = termenv.CSI + seq + "m"
	}
	return Styled[S, V]{value: v, prefix: prefix}
}

func (p Styled[S, V]) Render(w Writer, s S) error {
	if p.prefix == "" {
		return p.value.Render(w, s)
	}
	if err := WriteString(w, p.prefix); err != nil {
		return err
	}
	if err := p.value.Render(w, s); err != nil {
		return err
	}
	return WriteString(w, resetSeq)
}

func (p Styled[S, V]) SizeEstimate(s S) int {
	n := p.value.SizeEstimate(s)
	if p.prefix != "" {
		n += len(p.prefix) + len(resetSeq)
	}
	return n
}
