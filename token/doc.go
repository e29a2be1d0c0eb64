// Package token provides the low-level text services shared by the
// parser and the encoder: the offset index mapping byte offsets to
// line/column positions for error reporting, the string quoting
// grammar per format variant, and scanners for number and identifier
// literals.
package token
