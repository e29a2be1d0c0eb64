package parse

import (
	"github.com/lsonfmt/go-lson/format"
	"github.com/lsonfmt/go-lson/ir"
	"github.com/lsonfmt/go-lson/token"
)

// DefaultMaxDepth bounds container nesting so pathological input fails
// with a ParseError instead of exhausting the call stack.
const DefaultMaxDepth = 512

type parseOpts struct {
	format    format.Format
	lenient   bool
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

func ParseLSON() ParseOption {
	return ParseFormat(format.LSONFormat)
}

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseLenient permits unquoted identifier keys and single-quoted
// strings in the JSON variant. It has no effect on LSON, which allows
// single quotes already.
func ParseLenient(v bool) ParseOption {
	return func(o *parseOpts) { o.lenient = v }
}

// ParseMaxDepth overrides DefaultMaxDepth. n <= 0 restores the
// default.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParsePositions records the start position of every parsed node into
// m, for callers that need to point diagnostics back at input text.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
