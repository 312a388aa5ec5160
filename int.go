package fastfmt

import "strconv"

// Maximum decimal lengths, sign included.
const (
	int8Digits   = 4
	int16Digits  = 6
	int32Digits  = 11
	int64Digits  = 20
	uint8Digits  = 3
	uint16Digits = 5
	uint32Digits = 10
	uint64Digits = 20

	intDigits  = int32Digits + (int64Digits-int32Digits)*(strconv.IntSize/64)
	uintDigits = uint32Digits + (uint64Digits-uint32Digits)*(strconv.IntSize/64)
)

// Integer types rendered in decimal under [Display]. Their estimate is the
// longest possible rendering of the type, whatever the value.
type (
	Int8   int8
	Int16  int16
	Int32  int32
	Int64  int64
	Int    int
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64
	Uint   uint
)

func (v Int8) Render(w Writer, _ Display) error {
	var buf [int8Digits + 1]byte
	return writeSigned(w, buf[:], int64(v))
}

func (Int8) SizeEstimate(Display) int { return int8Digits }

func (v Int16) Render(w Writer, _ Display) error {
	var buf [int16Digits + 1]byte
	return writeSigned(w, buf[:], int64(v))
}

func (Int16) SizeEstimate(Display) int { return int16Digits }

func (v Int32) Render(w Writer, _ Display) error {
	var buf [int32Digits + 1]byte
	return writeSigned(w, buf[:], int64(v))
}

func (Int32) SizeEstimate(Display) int { return int32Digits }

func (v Int64) Render(w Writer, _ Display) error {
	var buf [int64Digits + 1]byte
	return writeSigned(w, buf[:], int64(v))
}

func (Int64) SizeEstimate(Display) int { return int64Digits }

func (v Int) Render(w Writer, _ Display) error {
	var buf [intDigits + 1]byte
	return writeSigned(w, buf[:], int64(v))
}

func (Int) SizeEstimate(Display) int { return intDigits }

func (v Uint8) Render(w Writer, _ Display) error {
	var buf [uint8Digits + 1]byte
	return writeUnsigned(w, buf[:], uint64(v))
}

func (Uint8) SizeEstimate(Display) int { return uint8Digits }

func (v Uint16) Render(w Writer, _ Display) error {
	var buf [uint16Digits + 1]byte
	return writeUnsigned(w, buf[:], uint64(v))
}

func (Uint16) SizeEstimate(Display) int { return uint16Digits }

func (v Uint32) Render(w Writer, _ Display) error {
	var buf [uint32Digits + 1]byte
	return writeUnsigned(w, buf[:], uint64(v))
}

func (Uint32) SizeEstimate(Display) int { return uint32Digits }

func (v Uint64) Render(w Writer, _ Display) error {
	var buf [uint64Digits + 1]byte
	return writeUnsigned(w, buf[:], uint64(v))
}

func (Uint64) SizeEstimate(Display) int { return uint64Digits }

func (v Uint) Render(w Writer, _ Display) error {
	var buf [uintDigits + 1]byte
	return writeUnsigned(w, buf[:], uint64(v))
}

func (Uint) SizeEstimate(Display) int { return uintDigits }

// writeSigned formats v into buf, which must hold the longest rendering of
// the source type. buf stays on the stack: see writeDigits.
func writeSigned(w Writer, buf []byte, v int64) error {
	return writeDigits(w, strconv.AppendInt(buf[:0], v, 10))
}

func writeUnsigned(w Writer, buf []byte, v uint64) error {
	return writeDigits(w, strconv.AppendUint(buf[:0], v, 10))
}

// writeDigits writes ASCII digits without handing p to an interface method,
// which would move the caller's buffer to the heap. Builder and Buffer copy
// p directly; other writers get one rune per digit.
func writeDigits(w Writer, p []byte) error {
	switch s := w.(type) {
	case *Builder:
		s.buf = append(s.buf, p...)
		return nil
	case *Buffer:
		return s.writeASCII(p)
	}
	for _, c := range p {
		if err := w.WriteRune(rune(c)); err != nil {
			return err
		}
	}
	return nil
}
