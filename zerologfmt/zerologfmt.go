// Package zerologfmt adds fastfmt renderings to zerolog events without
// building intermediate strings.
//
//	zerologfmt.Str(log.Info(), "id", fastfmt.Uint64(id)).Msg("loaded")
//	zerologfmt.Msg(log.Debug(), fastfmt.Str("took "), fastfmt.Int64(ms), fastfmt.Str("ms"))
package zerologfmt

import (
	"sync"

	"github.com/bjaus/fastfmt"
	"github.com/rs/zerolog"
)

var builders = sync.Pool{
	New: func() any { return new(fastfmt.Builder) },
}

func getBuilder() *fastfmt.Builder {
	return builders.Get().(*fastfmt.Builder)
}

func putBuilder(b *fastfmt.Builder) {
	b.Reset()
	builders.Put(b)
}

// Str adds the rendering of v to e under key. A nil (disabled) event is
// returned as is without rendering. When v fails, the text rendered so far
// is added and the error is set on the event with Event.Err.
func Str(e *zerolog.Event, key string, v fastfmt.Renderable[fastfmt.Display]) *zerolog.Event {
	if !e.Enabled() {
		return e
	}
	b := getBuilder()
	defer putBuilder(b)
	err := fastfmt.Fwrite(b, v)
	e = e.Bytes(key, b.Bytes())
	if err != nil {
		e = e.Err(err)
	}
	return e
}

// Msg renders args as the event message and sends e. zerolog takes the
// message as a string, so the rendering is copied once. A failed render is
// reported as for [Str].
func Msg(e *zerolog.Event, args ...fastfmt.Renderable[fastfmt.Display]) {
	if !e.Enabled() {
		e.Discard()
		return
	}
	b := getBuilder()
	defer putBuilder(b)
	if err := fastfmt.Fwrite(b, args...); err != nil {
		e = e.Err(err)
	}
	e.Msg(b.String())
}
