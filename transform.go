package fastfmt

// Transform rewrites text on its way to a [Writer]. Escaping, case mapping
// and encoding of special characters are all transforms.
type Transform interface {
	// TransformRune writes the transformed form of r to w. It may write
	// nothing, one rune, or several.
	TransformRune(w Writer, r rune) error
	// TransformSizeHint adjusts a byte estimate for the growth or shrinkage
	// the transform causes. It returns the largest possible size, or n when
	// no bound is known.
	TransformSizeHint(n int) int
}

// StringTransform is implemented by transforms with a bulk string path.
// Without it, [TransformString] transforms rune by rune.
type StringTransform interface {
	TransformString(w Writer, s string) error
}

// TransformString writes the transformed form of s to w.
func TransformString(t Transform, w Writer, s string) error {
	if st, ok := t.(StringTransform); ok {
		return st.TransformString(w, s)
	}
	for _, r := range s {
		if err := t.TransformRune(w, r); err != nil {
			return err
		}
	}
	return nil
}

// Transformer applies a transform to everything written through it.
type Transformer[T Transform, W Writer] struct {
	transform T
	writer    W
}

// NewTransformer attaches t to w.
func NewTransformer[T Transform, W Writer](t T, w W) Transformer[T, W] {
	return Transformer[T, W]{transform: t, writer: w}
}

func (t Transformer[T, W]) WriteRune(r rune) error {
	return t.transform.TransformRune(t.writer, r)
}

func (t Transformer[T, W]) WriteString(s string) error {
	return TransformString(t.transform, t.writer, s)
}

func (t Transformer[T, W]) SizeHint(n int) {
	t.writer.SizeHint(t.transform.TransformSizeHint(n))
}

func (t Transformer[T, W]) UsesSizeHint() bool {
	return UsesSizeHint(t.writer)
}

// Unwrap returns the underlying writer.
func (t Transformer[T, W]) Unwrap() W { return t.writer }

// Transformed applies a transform to one value's output only.
type Transformed[S any, V Renderable[S], T Transform] struct {
	value     V
	transform T
}

// NewTransformed attaches t to v.
func NewTransformed[S any, V Renderable[S], T Transform](v V, t T) Transformed[S, V, T] {
	return Transformed[S, V, T]{value: v, transform: t}
}

func (t Transformed[S, V, T]) Render(w Writer, s S) error {
	return t.value.Render(NewTransformer(t.transform, w), s)
}

func (t Transformed[S, V, T]) SizeEstimate(s S) int {
	return t.transform.TransformSizeHint(t.value.SizeEstimate(s))
}
