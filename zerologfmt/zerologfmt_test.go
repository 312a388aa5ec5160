package zerologfmt_test

import (
	"bytes"
	"testing"

	"github.com/bjaus/fastfmt"
	"github.com/bjaus/fastfmt/zerologfmt"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStr(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    fastfmt.Renderable[fastfmt.Display]
		want string
	}{
		"int":   {v: fastfmt.Int32(-5), want: `{"level":"info","n":"-5","message":"hi"}`},
		"text":  {v: fastfmt.Str("abc"), want: `{"level":"info","n":"abc","message":"hi"}`},
		"chain": {v: fastfmt.NewChain[fastfmt.Display](fastfmt.Str("id-"), fastfmt.Uint8(7)), want: `{"level":"info","n":"id-7","message":"hi"}`},
		"debug": {v: fastfmt.Dbg(fastfmt.Text[fastfmt.Debug]("dbg")), want: `{"level":"info","n":"dbg","message":"hi"}`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := zerolog.New(&buf)
			zerologfmt.Str(log.Info(), "n", tt.v).Msg("hi")
			assert.JSONEq(t, tt.want, buf.String())
		})
	}
}

func TestStrDisabled(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.ErrorLevel)
	e := zerologfmt.Str(log.Info(), "n", fastfmt.Int(1))
	assert.Nil(t, e)
	e.Msg("ignored")
	assert.Empty(t, buf.String())
}

func TestMsg(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	zerologfmt.Msg(log.Warn().Str("k", "v"), fastfmt.Str("took "), fastfmt.Int64(12), fastfmt.Str("ms"))
	assert.JSONEq(t, `{"level":"warn","k":"v","message":"took 12ms"}`, buf.String())
}

func TestMsgDisabled(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.ErrorLevel)
	zerologfmt.Msg(log.Debug(), fastfmt.Str("nothing"))
	assert.Empty(t, buf.String())
}

func TestBuildersAreReused(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	for range 3 {
		buf.Reset()
		zerologfmt.Msg(log.Info(), fastfmt.Str("x"))
		require.NotEmpty(t, buf.String())
		assert.JSONEq(t, `{"level":"info","message":"x"}`, buf.String())
	}
}

func TestFailedRenderSetsError(t *testing.T) {
	t.Parallel()
	failing := fastfmt.JSON[func()]{Value: func() {}}

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	zerologfmt.Str(log.Info(), "n", failing).Msg("hi")
	assert.JSONEq(t, `{"level":"info","n":"","error":"json: unsupported type: func()","message":"hi"}`, buf.String())

	buf.Reset()
	zerologfmt.Msg(log.Info(), fastfmt.Str("partial "), failing, fastfmt.Str("dropped"))
	assert.JSONEq(t, `{"level":"info","error":"json: unsupported type: func()","message":"partial "}`, buf.String())
}
