// Package encode renders ir.Node trees back to JSON or LSON text.
//
// Two modes exist per format: wire (compact, canonical, the round-trip
// and identity form) and indented (human editable). Indented JSON uses
// 2-space indents with one entry per line; indented LSON uses tabs,
// annotates implicit-key entries with a trailing `-- [n]` comment, and
// writes `[key] = value` for explicit keys.
//
// String escaping and number formatting exactly invert the parser, so
// re-parsing encoded output yields an Equal tree in either mode.
package encode
