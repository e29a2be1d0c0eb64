// Package lson is a structured-value engine over two parallel text
// formats: a JSON variant (with an optional lenient mode) and the LSON
// variable-list variant with Lua-style table literals.
//
// This package is the convenience surface; the work happens in the
// subpackages: parse, encode, ir, conv, safe and jsfmt.
package lson

import (
	"github.com/lsonfmt/go-lson/encode"
	"github.com/lsonfmt/go-lson/ir"
	"github.com/lsonfmt/go-lson/jsfmt"
	"github.com/lsonfmt/go-lson/parse"
)

// ParseJSON parses a JSON document into a value tree.
func ParseJSON(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, append(opts, parse.ParseJSON())...)
}

func ParseJSONString(v string, opts ...parse.ParseOption) (*ir.Node, error) {
	return ParseJSON([]byte(v), opts...)
}

// TryParseJSON reports failure as ok=false instead of an error.
func TryParseJSON(d []byte, opts ...parse.ParseOption) (*ir.Node, bool) {
	res, err := ParseJSON(d, opts...)
	return res, err == nil
}

// ParseLSON parses a single LSON value (table, string, number,
// true/false or nil).
func ParseLSON(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, append(opts, parse.ParseLSON())...)
}

func ParseLSONString(v string, opts ...parse.ParseOption) (*ir.Node, error) {
	return ParseLSON([]byte(v), opts...)
}

// TryParseLSON reports failure as ok=false instead of an error.
func TryParseLSON(d []byte, opts ...parse.ParseOption) (*ir.Node, bool) {
	res, err := ParseLSON(d, opts...)
	return res, err == nil
}

// ParseVars parses an LSON variable list (`name = value` bindings)
// into an ordered object node.
func ParseVars(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseVars(d, opts...)
}

// TryParseVars reports failure as ok=false instead of an error.
func TryParseVars(d []byte, opts ...parse.ParseOption) (*ir.Node, bool) {
	return parse.TryParseVars(d, opts...)
}

// StringJSON renders the compact canonical JSON form.
func StringJSON(node *ir.Node) (string, error) {
	return encode.String(node, encode.EncodeJSON(), encode.EncodeWire(true))
}

// IndentedJSON renders the human-editable JSON form: 2-space indents,
// one entry per line.
func IndentedJSON(node *ir.Node) (string, error) {
	return encode.String(node, encode.EncodeJSON())
}

// StringLSON renders the compact canonical LSON form.
func StringLSON(node *ir.Node) (string, error) {
	return encode.String(node, encode.EncodeLSON(), encode.EncodeWire(true))
}

// IndentedLSON renders the human-editable LSON form: tab indents,
// implicit keys annotated with `-- [n]` comments.
func IndentedLSON(node *ir.Node) (string, error) {
	return encode.String(node, encode.EncodeLSON())
}

// FormatVars renders an object node as an LSON variable list.
func FormatVars(node *ir.Node) (string, error) {
	return encode.VarsString(node)
}

// Format substitutes {{name}} placeholders in a JavaScript-like
// snippet; see package jsfmt.
func Format(src string, vars map[string]*ir.Node) (string, error) {
	return jsfmt.Format(src, vars)
}

// Fmt is Format over alternating name, value arguments.
func Fmt(src string, pairs ...any) (string, error) {
	return jsfmt.Fmt(src, pairs...)
}
