// Package token provides the low-level reader and writer contracts shared
// by the AST and typed-codec paths.
//
// The Reader is a character-level JSON lexer: it consumes literal
// characters, skips whole values without decoding them, walks object
// entries, and matches object keys against a known candidate set via a
// Matcher. Reads can be recorded and rewound, which decoders use to
// re-scan the bytes of a single object.
//
// The Writer is the output sink consumed by encoders. Writes do not return
// errors; a Sink latches the first error from its underlying io.Writer and
// callers check it once when encoding completes.
package token
