package token

import (
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncde\n\nf"))
	tests := []struct {
		off, line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
	}
	for _, tt := range tests {
		l, c := doc.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("LineCol(%d) = (%d,%d), want (%d,%d)",
				tt.off, l, c, tt.line, tt.col)
		}
	}
}

func TestPosString(t *testing.T) {
	doc := NewPosDoc([]byte("hello\nworld"))
	s := doc.Pos(7).String()
	if !strings.Contains(s, "line=2") || !strings.Contains(s, "col=2") {
		t.Errorf("Pos.String() = %q", s)
	}
	if !strings.Contains(s, "world") {
		t.Errorf("Pos.String() = %q lacks snippet", s)
	}
}

func TestSnippet(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxyz0123456789"
	doc := NewPosDoc([]byte(text))
	if got := doc.Pos(0).Snippet(); got != text[:15] {
		t.Errorf("Snippet at start = %q", got)
	}
	if got := doc.Pos(20).Snippet(); got != text[5:35] {
		t.Errorf("Snippet mid = %q", got)
	}
	if got := doc.Pos(len(text)).Snippet(); got != text[len(text)-15:] {
		t.Errorf("Snippet at end = %q", got)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		isFloat bool
		err     bool
	}{
		{"0", 1, false, false},
		{"5", 1, false, false},
		{"-5", 2, false, false},
		{"123,", 3, false, false},
		{"1.5", 3, true, false},
		{"1.5e10", 6, true, false},
		{"1e-2", 4, true, false},
		{"1E+2", 4, true, false},
		{"0.25", 4, true, false},
		{"-0.5", 4, true, false},
		{"01", 0, false, true},
		{"-", 0, false, true},
		{"x", 0, false, true},
		// a bare trailing dot is not consumed
		{"1.", 1, false, false},
		{"1.e5", 1, false, false},
	}
	for _, tt := range tests {
		n, isFloat, err := Number([]byte(tt.in))
		if (err != nil) != tt.err {
			t.Errorf("Number(%q) err = %v", tt.in, err)
			continue
		}
		if n != tt.n || isFloat != tt.isFloat {
			t.Errorf("Number(%q) = (%d,%v), want (%d,%v)",
				tt.in, n, isFloat, tt.n, tt.isFloat)
		}
	}
}

func TestQuoteJSON(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", `""`},
		{"a", `"a"`},
		{"a\"b", `"a\"b"`},
		{"a\\b", `"a\\b"`},
		{"a\nb", `"a\nb"`},
		{"tab\there", `"tab\there"`},
		{"\x01", `"\u0001"`},
		// an invalid UTF-8 byte passes through untouched
		{"a\x80b", "\"a\x80b\""},
		{"héllo", `"héllo"`},
	}
	for _, tt := range tests {
		if got := QuoteJSON(tt.in); got != tt.out {
			t.Errorf("QuoteJSON(%q) = %s, want %s", tt.in, got, tt.out)
		}
	}
}

func TestQuoteLSON(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"a", `"a"`},
		{"a\ab", `"a\ab"`},
		{"a\vb", `"a\vb"`},
		{"a\nb", `"a\nb"`},
		{"q\"q", `"q\"q"`},
		{"a\x80b", "\"a\x80b\""},
	}
	for _, tt := range tests {
		if got := QuoteLSON(tt.in); got != tt.out {
			t.Errorf("QuoteLSON(%q) = %s, want %s", tt.in, got, tt.out)
		}
	}
}

func TestIdent(t *testing.T) {
	tests := []struct {
		in string
		n  int
	}{
		{"abc", 3},
		{"_a1", 3},
		{"a-b", 1},
		{"1ab", 0},
		{"", 0},
		{"x = 1", 1},
	}
	for _, tt := range tests {
		if got := Ident([]byte(tt.in)); got != tt.n {
			t.Errorf("Ident(%q) = %d, want %d", tt.in, got, tt.n)
		}
	}
}
