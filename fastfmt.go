package fastfmt

import "io"

// Renderable is implemented by values that can describe themselves to a
// [Writer] under strategy S.
type Renderable[S any] interface {
	// Render writes the value to w. Errors from w are returned unchanged.
	Render(w Writer, s S) error
	// SizeEstimate returns the maximum number of bytes Render writes when
	// that is known, or a lower bound otherwise. Zero is always valid.
	SizeEstimate(s S) int
}

// Display is the strategy for human-readable output.
type Display struct{}

// Debug is the strategy for diagnostic output.
type Debug struct{}

// Strategy values with package lifetime, handy for [Inst].
var (
	StdDisplay Display
	StdDebug   Debug
)

// Empty renders nothing. It is the neutral element of [Chain].
type Empty[S any] struct{}

func (Empty[S]) Render(Writer, S) error { return nil }
func (Empty[S]) SizeEstimate(S) int     { return 0 }

// Chain appends o after the empty value.
func (e Empty[S]) Chain(o Renderable[S]) Chain[S, Empty[S], Renderable[S]] {
	return NewChain[S](e, o)
}

// Chain renders two values back to back under the same strategy. Its estimate
// is the sum of theirs.
type Chain[S any, A Renderable[S], B Renderable[S]] struct {
	first  A
	second B
}

// NewChain concatenates a and b.
func NewChain[S any, A Renderable[S], B Renderable[S]](a A, b B) Chain[S, A, B] {
	return Chain[S, A, B]{first: a, second: b}
}

func (c Chain[S, A, B]) Render(w Writer, s S) error {
	if err := c.first.Render(w, s); err != nil {
		return err
	}
	return c.second.Render(w, s)
}

func (c Chain[S, A, B]) SizeEstimate(s S) int {
	return c.first.SizeEstimate(s) + c.second.SizeEstimate(s)
}

// Chain appends o after c.
func (c Chain[S, A, B]) Chain(o Renderable[S]) Chain[S, Renderable[S], Renderable[S]] {
	return NewChain[S, Renderable[S], Renderable[S]](c, o)
}

// Instantiated binds a value to the strategy it renders with. It renders
// under [Display] whatever its bound strategy is, which lets values of
// different strategies be chained into one display.
//
// The strategy is referenced, not copied; it must stay unchanged while the
// Instantiated is in use.
type Instantiated[S any, T Renderable[S]] struct {
	value    T
	strategy *S
}

// Inst binds value to strategy, which must not be nil.
func Inst[S any, T Renderable[S]](value T, strategy *S) Instantiated[S, T] {
	return Instantiated[S, T]{value: value, strategy: strategy}
}

// Dbg binds value to the [Debug] strategy.
func Dbg[T Renderable[Debug]](value T) Instantiated[Debug, T] {
	return Inst(value, &StdDebug)
}

func (i Instantiated[S, T]) Render(w Writer, _ Display) error {
	return i.value.Render(w, *i.strategy)
}

func (i Instantiated[S, T]) SizeEstimate(Display) int {
	return i.value.SizeEstimate(*i.strategy)
}

// Chain appends o after i.
func (i Instantiated[S, T]) Chain(o Renderable[Display]) Chain[Display, Renderable[Display], Renderable[Display]] {
	return NewChain[Display, Renderable[Display], Renderable[Display]](i, o)
}

// Fwrite renders args to w in order, stopping at the first error.
// Arguments render under [Display]; wrap them with [Inst] or [Dbg] to pick
// another strategy per argument.
//
// When w uses size hints, the sum of the estimates is sent once before
// anything is written. The arguments are not wrapped or copied, so Fwrite
// adds no allocation to what they render.
func Fwrite(w Writer, args ...Renderable[Display]) error {
	if UsesSizeHint(w) {
		n := 0
		for _, arg := range args {
			n += arg.SizeEstimate(StdDisplay)
		}
		w.SizeHint(n)
	}
	for _, arg := range args {
		if err := arg.Render(w, StdDisplay); err != nil {
			return err
		}
	}
	return nil
}

// Sprint renders args and returns the text. A [Builder] never fails, so
// only an argument can: the text then ends where that argument failed.
// Use [Fwrite] with a Builder to see the error.
func Sprint(args ...Renderable[Display]) string {
	var b Builder
	_ = Fwrite(&b, args...)
	return b.String()
}

// String renders v and returns the text, truncated as with [Sprint] when v
// fails.
func String(v Renderable[Display]) string {
	return Sprint(v)
}

// Fprint renders args as UTF-8 to w.
func Fprint(w io.Writer, args ...Renderable[Display]) error {
	enc := NewEncoder(w, UTF8)
	if err := Fwrite(enc, args...); err != nil {
		return err
	}
	return enc.Flush()
}
