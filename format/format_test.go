package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		fail     bool
	}{
		{"json", JSONFormat, false},
		{"j", JSONFormat, false},
		{"lson", LSONFormat, false},
		{"l", LSONFormat, false},
		{"JSON", 0, true},
		{"lua", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		if (err != nil) != tt.fail {
			t.Errorf("ParseFormat(%q) err = %v", tt.in, err)
			continue
		}
		if tt.fail {
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseFormat(%q) err = %v, want ErrBadFormat", tt.in, err)
			}
			continue
		}
		if f != tt.expected {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, f, tt.expected)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != f {
			t.Errorf("round trip %v -> %s -> %v", f, d, back)
		}
	}
}

func TestAccessors(t *testing.T) {
	if !JSONFormat.IsJSON() || JSONFormat.IsLSON() {
		t.Errorf("JSONFormat misclassified")
	}
	if !LSONFormat.IsLSON() || LSONFormat.IsJSON() {
		t.Errorf("LSONFormat misclassified")
	}
	if JSONFormat.Null() != "null" || LSONFormat.Null() != "nil" {
		t.Errorf("Null keywords: %q, %q", JSONFormat.Null(), LSONFormat.Null())
	}
	if JSONFormat.Suffix() != ".json" || LSONFormat.Suffix() != ".lson" {
		t.Errorf("Suffixes: %q, %q", JSONFormat.Suffix(), LSONFormat.Suffix())
	}
	if JSONFormat.String() != "json" || LSONFormat.String() != "lson" {
		t.Errorf("Strings: %q, %q", JSONFormat, LSONFormat)
	}
}
