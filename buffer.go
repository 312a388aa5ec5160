package fastfmt

import "unicode/utf8"

// Buffer writes into a caller-owned byte slice of fixed capacity. Writes
// that do not fit fail with [ErrBufferOverflow]. A character is written
// whole or not at all.
type Buffer struct {
	buf []byte
	n   int
}

// NewBuffer returns a Buffer writing into p from its start.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{buf: p}
}

func (b *Buffer) WriteRune(r rune) error {
	size := utf8.RuneLen(r)
	if size < 0 {
		r = utf8.RuneError
		size = utf8.RuneLen(r)
	}
	if size > b.Available() {
		return ErrBufferOverflow
	}
	b.n += utf8.EncodeRune(b.buf[b.n:], r)
	return nil
}

// WriteString copies s in one go. When s does not fit, the characters that
// do are written before the error is returned, as if written one by one.
// Invalid UTF-8 is written as U+FFFD per bad byte, as WriteRune would.
func (b *Buffer) WriteString(s string) error {
	if !utf8.ValidString(s) {
		for _, r := range s {
			if err := b.WriteRune(r); err != nil {
				return err
			}
		}
		return nil
	}
	if len(s) <= b.Available() {
		b.n += copy(b.buf[b.n:], s)
		return nil
	}
	cut := b.Available()
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	b.n += copy(b.buf[b.n:], s[:cut])
	return ErrBufferOverflow
}

// writeASCII copies p, which must be ASCII, keeping the prefix that fits.
func (b *Buffer) writeASCII(p []byte) error {
	n := copy(b.buf[b.n:], p)
	b.n += n
	if n < len(p) {
		return ErrBufferOverflow
	}
	return nil
}

// SizeHint does nothing; the capacity is fixed.
func (b *Buffer) SizeHint(int) {}

// Bytes returns the written prefix of the slice.
func (b *Buffer) Bytes() []byte { return b.buf[:b.n] }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return b.n }

// Reset discards the written bytes so the slice can be filled again.
func (b *Buffer) Reset() { b.n = 0 }

// Available returns the number of bytes left.
func (b *Buffer) Available() int { return len(b.buf) - b.n }
