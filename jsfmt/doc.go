// Package jsfmt embeds encoded values into JavaScript-like snippets.
//
// Format replaces {{name}} placeholders with the wire JSON form of the
// named value while tokenizing the snippet, so placeholder-shaped text
// inside string literals, regex literals and comments is left alone.
// Comments and whitespace are dropped from the output; a single space
// is re-inserted wherever two adjacent tokens would otherwise fuse
// into a different lexeme (identifiers or numbers touching, or same
// sign '+'/'-' pairs touching).
//
// The tokenizer only classifies, it never evaluates: regex-vs-division
// for '/' is decided by whether the previous significant token could
// end an expression, with the return keyword forcing regex position.
// Substitution is a single pass; substituted text is never re-expanded
// even when it contains literal "{{".
package jsfmt
