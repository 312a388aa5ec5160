// Package fastfmt renders values to text through statically chosen
// strategies, without intermediate buffers and with explicit errors.
//
// # Writers
//
// A [Writer] accepts characters and an advisory size hint. Optional
// interfaces enhance it:
//
//   - [StringWriter] → bulk string writes (default: rune by rune)
//   - [HintUser] → ask for size hints (default: hints are not computed)
//
// Built-in writers:
//
//   - [Builder]: growable, never fails, pre-allocates on hints
//   - [Buffer]: fixed byte slice, fails with [ErrBufferOverflow]
//   - [Encoder]: io.Writer in UTF-8 or a single-byte [Charmap]
//
// # Rendering
//
// A value implementing [Renderable] for a strategy type S renders itself
// under S and estimates its size. [Display] and [Debug] are built in; any
// type can serve as a strategy, including ones carrying configuration such
// as [Hex]. The strategy is a type argument, so the choice is made at
// compile time.
//
// Values are combined without allocation:
//
//   - [Empty] renders nothing
//   - [Chain] renders two values in order
//   - [Instantiated] binds a value to a strategy so that values of different
//     strategies can be chained under [Display]
//
// [Fwrite] is the usual entry point. It sends one size hint if the writer
// wants it, then renders its arguments in order:
//
//	var b fastfmt.Builder
//	err := fastfmt.Fwrite(&b, fastfmt.Str("id="), fastfmt.Int32(id), fastfmt.Dbg(fastfmt.Text[fastfmt.Debug](name)))
//
// # Transforms
//
// A [Transform] rewrites characters on their way to a writer. Attach one to a
// writer with [NewTransformer], or to a single value with [NewTransformed]:
//
//	w := fastfmt.NewTransformer(fastfmt.Upper{}, fastfmt.NewBuffer(buf))
//	err := fastfmt.Fwrite(w, fastfmt.Str("Hello"), fastfmt.Str(" world!"))
//
// Built-in transforms are [Upper], [Lower], [HTMLEscape] and [Truncate].
//
// # Errors
//
// Errors come from writers and are returned unchanged by every combinator.
// After an error the writer must be discarded; output written before the
// error is not rolled back.
//
//   - [ErrBufferOverflow]: a [Buffer] ran out of room
//   - [ErrUnencodable]: an [Encoder] met a rune its encoding lacks
package fastfmt
