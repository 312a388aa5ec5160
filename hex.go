package fastfmt

// Hex is a strategy rendering bytes as hexadecimal digits.
type Hex struct {
	Upper bool
}

const (
	lowerHexDigits = "0123456789abcdef"
	upperHexDigits = "0123456789ABCDEF"
)

// Bytes renders under [Hex] as two digits per byte, no separators.
type Bytes []byte

func (b Bytes) Render(w Writer, h Hex) error {
	digits := lowerHexDigits
	if h.Upper {
		digits = upperHexDigits
	}
	for _, c := range b {
		if err := w.WriteRune(rune(digits[c>>4])); err != nil {
			return err
		}
		if err := w.WriteRune(rune(digits[c&0x0f])); err != nil {
			return err
		}
	}
	return nil
}

func (b Bytes) SizeEstimate(Hex) int { return 2 * len(b) }
