package fastfmt

import "iter"

// Join renders items with sep between them.
type Join[S any, T Renderable[S]] struct {
	sep   string
	items []T
}

// NewJoin returns a Join of items separated by sep.
func NewJoin[S any, T Renderable[S]](sep string, items ...T) Join[S, T] {
	return Join[S, T]{sep: sep, items: items}
}

func (j Join[S, T]) Render(w Writer, s S) error {
	for i, item := range j.items {
		if i > 0 && j.sep != "" {
			if err := WriteString(w, j.sep); err != nil {
				return err
			}
		}
		if err := item.Render(w, s); err != nil {
			return err
		}
	}
	return nil
}

func (j Join[S, T]) SizeEstimate(s S) int {
	if len(j.items) == 0 {
		return 0
	}
	n := utf8Len(j.sep) * (len(j.items) - 1)
	for _, item := range j.items {
		n += item.SizeEstimate(s)
	}
	return n
}

// Each renders the values of an iterator with sep between them, pulling
// them as it writes. The estimate is zero since the iterator is not walked
// ahead of time.
type Each[S any, T Renderable[S]] struct {
	sep string
	seq iter.Seq[T]
}

// NewEach returns an Each over seq.
func NewEach[S any, T Renderable[S]](sep string, seq iter.Seq[T]) Each[S, T] {
	return Each[S, T]{sep: sep, seq: seq}
}

// NewEachChan returns an Each over the values received from ch. It can be
// rendered once.
func NewEachChan[S any, T Renderable[S]](sep string, ch <-chan T) Each[S, T] {
	return NewEach[S](sep, chanToIter(ch))
}

func (e Each[S, T]) Render(w Writer, s S) error {
	first := true
	for item := range e.seq {
		if !first && e.sep != "" {
			if err := WriteString(w, e.sep); err != nil {
				return err
			}
		}
		first = false
		if err := item.Render(w, s); err != nil {
			return err
		}
	}
	return nil
}

func (Each[S, T]) SizeEstimate(S) int { return 0 }

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
