// Package parse turns JSON and LSON text into ir.Node trees.
//
// Parsing is a single pass of recursive descent directly over the
// input bytes with one character of lookahead; there is no separate
// token stream. Whitespace, and in LSON `--` line comments, are
// consumed inline between structural characters.
//
// Errors carry the byte offset of the failure; the 1-based line and
// column and a surrounding text snippet are computed lazily through
// the token package's offset index.
package parse
