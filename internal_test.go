package fastfmt

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

// countingWriter records how text reached it.
type countingWriter struct {
	Builder
	runes   int
	strings int
}

func (c *countingWriter) WriteRune(r rune) error {
	c.runes++
	return c.Builder.WriteRune(r)
}

func (c *countingWriter) WriteString(s string) error {
	c.strings++
	return c.Builder.WriteString(s)
}

type errWriterInternal struct{}

func (errWriterInternal) WriteRune(rune) error { return errInternalWrite }
func (errWriterInternal) SizeHint(int)         {}

func TestMapRunesWritesUnchangedRunsInBulk(t *testing.T) {
	t.Parallel()
	w := &countingWriter{}
	require.NoError(t, mapRunes(w, "abcDEF", unicode.ToUpper))
	assert.Equal(t, "ABCDEF", w.String())
	assert.Equal(t, 3, w.runes)
	assert.Equal(t, 1, w.strings)
}

func TestMapRunesNothingToMap(t *testing.T) {
	t.Parallel()
	w := &countingWriter{}
	require.NoError(t, mapRunes(w, "ABC", unicode.ToUpper))
	assert.Equal(t, 0, w.runes)
	assert.Equal(t, 1, w.strings)
}

func TestMapRunesEmpty(t *testing.T) {
	t.Parallel()
	w := &countingWriter{}
	require.NoError(t, mapRunes(w, "", unicode.ToUpper))
	assert.Zero(t, w.runes+w.strings)
}

func TestMapRunesError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, errInternalWrite, mapRunes(errWriterInternal{}, "a", unicode.ToUpper))
	assert.Equal(t, errInternalWrite, mapRunes(errWriterInternal{}, "A", unicode.ToUpper))
}

func TestCaseSizeHintBoundsMapping(t *testing.T) {
	t.Parallel()
	samples := []string{"", "a", "ı", "ſ", "ⱥⱦ", "ȿɀ", "straße", "ǅǈ", "Ⱥ"}
	for _, s := range samples {
		var b Builder
		require.NoError(t, mapRunes(&b, s, unicode.ToUpper))
		assert.LessOrEqual(t, b.Len(), caseSizeHint(len(s)), s)
		b.Reset()
		require.NoError(t, mapRunes(&b, s, unicode.ToLower))
		assert.LessOrEqual(t, b.Len(), caseSizeHint(len(s)), s)
	}
}

func TestHTMLEntity(t *testing.T) {
	t.Parallel()
	for _, r := range htmlSpecial {
		assert.NotEmpty(t, htmlEntity(r), string(r))
		assert.LessOrEqual(t, len(htmlEntity(r)), 5)
	}
	assert.Empty(t, htmlEntity('a'))
	assert.Empty(t, htmlEntity('日'))
}

func TestDigitConstants(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		longest string
		digits  int
	}{
		"int8":   {longest: strconv.FormatInt(math.MinInt8, 10), digits: int8Digits},
		"int16":  {longest: strconv.FormatInt(math.MinInt16, 10), digits: int16Digits},
		"int32":  {longest: strconv.FormatInt(math.MinInt32, 10), digits: int32Digits},
		"int64":  {longest: strconv.FormatInt(math.MinInt64, 10), digits: int64Digits},
		"int":    {longest: strconv.Itoa(math.MinInt), digits: intDigits},
		"uint8":  {longest: strconv.FormatUint(math.MaxUint8, 10), digits: uint8Digits},
		"uint16": {longest: strconv.FormatUint(math.MaxUint16, 10), digits: uint16Digits},
		"uint32": {longest: strconv.FormatUint(math.MaxUint32, 10), digits: uint32Digits},
		"uint64": {longest: strconv.FormatUint(math.MaxUint64, 10), digits: uint64Digits},
		"uint":   {longest: strconv.FormatUint(math.MaxUint, 10), digits: uintDigits},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, tt.longest, tt.digits)
		})
	}
}

func TestWriteDigits(t *testing.T) {
	t.Parallel()
	var buf [int64Digits + 1]byte

	var b Builder
	require.NoError(t, writeSigned(&b, buf[:], math.MinInt64))
	assert.Equal(t, "-9223372036854775808", b.String())

	w := &countingWriter{}
	require.NoError(t, writeSigned(w, buf[:], math.MinInt64))
	assert.Equal(t, "-9223372036854775808", w.String())
	assert.Equal(t, int64Digits, w.runes)
	assert.Zero(t, w.strings)

	small := NewBuffer(make([]byte, 3))
	require.ErrorIs(t, writeUnsigned(small, buf[:], 12345), ErrBufferOverflow)
	assert.Equal(t, "123", string(small.Bytes()))
}

func TestUTF8Len(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want int
	}{
		"empty":        {in: "", want: 0},
		"ascii":        {in: "abc", want: 3},
		"multibyte":    {in: "日本", want: 6},
		"invalid byte": {in: "a\xffb", want: 5},
		"two invalid":  {in: "\xff\xfe", want: 6},
		"truncated":    {in: "\xe6\x97", want: 6},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, utf8Len(tt.in))
			var b Builder
			require.NoError(t, b.WriteString(tt.in))
			assert.Equal(t, tt.want, b.Len())
		})
	}
}

func TestChanToIter(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	var got []int
	for v := range chanToIter(ch) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestChanToIterEarlyBreak(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	for v := range chanToIter(ch) {
		if v == 1 {
			break
		}
	}
	// The remaining values stay in the channel.
	assert.Len(t, ch, 2)
}

func TestHTMLEscapeRunesAndBulkAgree(t *testing.T) {
	t.Parallel()
	in := `a<b>"c"&'d'` + strings.Repeat("x", 10)
	var bulk, runes Builder
	require.NoError(t, HTMLEscape{}.TransformString(&bulk, in))
	for _, r := range in {
		require.NoError(t, HTMLEscape{}.TransformRune(&runes, r))
	}
	assert.Equal(t, bulk.String(), runes.String())
}
