package encode

import (
	"bytes"
	"strings"

	"github.com/lsonfmt/go-lson/ir"
)

// String encodes node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// MustString is String for nodes known to encode cleanly.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	v, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// VarsString encodes a variable-list object to a string.
func VarsString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := FormatVars(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
