package fastfmt

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding turns characters into bytes.
type Encoding interface {
	// AppendRune appends the encoding of r to dst.
	AppendRune(dst []byte, r rune) ([]byte, error)
}

// StringEncoding is implemented by encodings that can encode a whole
// string at once. Without it, strings are encoded rune by rune.
type StringEncoding interface {
	WriteString(w *bufio.Writer, s string) error
}

// UTF8 is the UTF-8 encoding.
var UTF8 Encoding = utf8Encoding{}

type utf8Encoding struct{}

func (utf8Encoding) AppendRune(dst []byte, r rune) ([]byte, error) {
	return utf8.AppendRune(dst, r), nil
}

func (utf8Encoding) WriteString(w *bufio.Writer, s string) error {
	if !utf8.ValidString(s) {
		for _, r := range s {
			if _, err := w.WriteRune(r); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := w.WriteString(s)
	return err
}

// Charmap returns a single-byte encoding backed by cm, such as
// charmap.ISO8859_1 or charmap.Windows1252. Runes outside the map fail with
// [ErrUnencodable].
func Charmap(cm *charmap.Charmap) Encoding {
	return charmapEncoding{cm: cm}
}

type charmapEncoding struct {
	cm *charmap.Charmap
}

func (e charmapEncoding) AppendRune(dst []byte, r rune) ([]byte, error) {
	b, err := e.encode(r)
	if err != nil {
		return dst, err
	}
	return append(dst, b), nil
}

func (e charmapEncoding) encode(r rune) (byte, error) {
	b, ok := e.cm.EncodeRune(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q in %s", ErrUnencodable, r, e.cm)
	}
	return b, nil
}

// Encoder is a [Writer] that encodes text onto an io.Writer. Output is
// buffered; call Flush when done.
type Encoder struct {
	w   *bufio.Writer
	enc Encoding
}

// NewEncoder returns an Encoder writing to w with enc.
func NewEncoder(w io.Writer, enc Encoding) *Encoder {
	return &Encoder{w: bufio.NewWriter(w), enc: enc}
}

func (e *Encoder) WriteRune(r rune) error {
	switch enc := e.enc.(type) {
	case utf8Encoding:
		_, err := e.w.WriteRune(r)
		return err
	case charmapEncoding:
		b, err := enc.encode(r)
		if err != nil {
			return err
		}
		return e.w.WriteByte(b)
	}
	var buf [utf8.UTFMax]byte
	p, err := e.enc.AppendRune(buf[:0], r)
	if err != nil {
		return err
	}
	_, err = e.w.Write(p)
	return err
}

func (e *Encoder) WriteString(s string) error {
	if se, ok := e.enc.(StringEncoding); ok {
		return se.WriteString(e.w, s)
	}
	for _, r := range s {
		if err := e.WriteRune(r); err != nil {
			return err
		}
	}
	return nil
}

// SizeHint does nothing; output streams through a fixed buffer.
func (e *Encoder) SizeHint(int) {}

// Flush writes any buffered bytes to the underlying io.Writer.
func (e *Encoder) Flush() error { return e.w.Flush() }

// NewIOWriter adapts w to io.Writer so that io-based encoders can write
// into it. The bytes written must be UTF-8 text.
func NewIOWriter(w Writer) io.Writer {
	return ioWriter{w: w}
}

type ioWriter struct {
	w Writer
}

func (iw ioWriter) Write(p []byte) (int, error) {
	if err := WriteString(iw.w, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
