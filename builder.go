package fastfmt

import (
	"slices"
	"unicode/utf8"
)

// Builder is a growable in-memory writer. Its writes never fail, and it
// grows its buffer ahead of time when given a size hint.
//
// The zero value is ready to use.
type Builder struct {
	buf []byte
}

func (b *Builder) WriteRune(r rune) error {
	b.buf = utf8.AppendRune(b.buf, r)
	return nil
}

// WriteString appends s. Invalid UTF-8 is written as U+FFFD per bad byte,
// as WriteRune would.
func (b *Builder) WriteString(s string) error {
	if utf8.ValidString(s) {
		b.buf = append(b.buf, s...)
		return nil
	}
	for _, r := range s {
		b.buf = utf8.AppendRune(b.buf, r)
	}
	return nil
}

func (b *Builder) SizeHint(n int) {
	if n > 0 {
		b.buf = slices.Grow(b.buf, n)
	}
}

func (b *Builder) UsesSizeHint() bool { return true }

// String returns a copy of the written text.
func (b *Builder) String() string { return string(b.buf) }

// Bytes returns the written text. It aliases the builder's buffer until the
// next write or Reset.
func (b *Builder) Bytes() []byte { return b.buf }

// Len returns the number of bytes written.
func (b *Builder) Len() int { return len(b.buf) }

// Cap returns the capacity of the underlying buffer.
func (b *Builder) Cap() int { return cap(b.buf) }

// Reset empties the builder, keeping its buffer for reuse.
func (b *Builder) Reset() { b.buf = b.buf[:0] }
