package jsfmt

import (
	"errors"
	"testing"

	"github.com/lsonfmt/go-lson/ir"
	"github.com/lsonfmt/go-lson/parse"
)

func TestFmt(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		pairs    []any
		expected string
	}{
		{"substitution", "f({{x}});", []any{"x", 5}, "f(5);"},
		{"string value", "f({{s}});", []any{"s", "a b"}, `f("a b");`},
		{"bool and null", "[{{a}},{{b}}]", []any{"a", true, "b", nil}, "[true,null]"},
		{"float value", "f({{x}})", []any{"x", 1.5}, "f(1.5)"},
		{"repeated placeholder", "{{x}}+{{x}}", []any{"x", 2}, "2+2"},
		{"whitespace collapses", "f( x ,\n\ty )", nil, "f(x,y)"},
		{"line comment dropped", "a // note\nb", nil, "a b"},
		{"block comment dropped", "a /* note */ b", nil, "a b"},
		{"division kept", "a / b // c", nil, "a/b"},
		{"division after paren", "f(x) / 2", nil, "f(x)/2"},
		{"increment intact", "i++;", nil, "i++;"},
		{"decrement intact", "i--;", nil, "i--;"},
		{"unary plus separated", "a + +b", nil, "a+ +b"},
		{"unary minus separated", "a - -b", nil, "a- -b"},
		{"idents stay split", "var x = 1;", nil, "var x=1;"},
		{"return keeps a space", "return {{x}};", []any{"x", 5}, "return 5;"},
		{"number literal", "x = 1.5e-3;", nil, "x=1.5e-3;"},
		{"hex literal", "x = 0xFF;", nil, "x=0xFF;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Fmt(tt.src, tt.pairs...)
			if err != nil {
				t.Fatalf("Fmt(%q): %v", tt.src, err)
			}
			if res != tt.expected {
				t.Errorf("Fmt(%q) = %q, want %q", tt.src, res, tt.expected)
			}
		})
	}
}

func TestProtectedRegions(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		// placeholders inside strings and regexes are text, not holes
		{"single quoted", "'{{x}}'", "'{{x}}'"},
		{"double quoted", `"{{x}}"`, `"{{x}}"`},
		{"backtick", "`{{x}}\n{{x}}`", "`{{x}}\n{{x}}`"},
		{"regex", "s.match(/{{x}}/)", "s.match(/{{x}}/)"},
		{"regex flags", "s.match(/a+/gi)", "s.match(/a+/gi)"},
		{"regex char class", "x = /[/]/;", "x=/[/]/;"},
		{"escaped quote", `'it\'s'`, `'it\'s'`},
		{"regex after return", "return /a/.test(s)", "return/a/.test(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Fmt(tt.src, "x", 1)
			if err != nil {
				t.Fatalf("Fmt(%q): %v", tt.src, err)
			}
			if res != tt.expected {
				t.Errorf("Fmt(%q) = %q, want %q", tt.src, res, tt.expected)
			}
		})
	}
}

func TestFormatWithNodes(t *testing.T) {
	cfg, err := parse.ParseString(`{"k": [1, 2]}`, parse.ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	res, err := Format("load({{cfg}}, {{id}})", map[string]*ir.Node{
		"cfg": cfg,
		"id":  ir.FromString("main"),
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := `load({"k":[1,2]},"main")`
	if res != expected {
		t.Errorf("Format = %q, want %q", res, expected)
	}
}

// A substituted value never goes through the template scanner again, so
// placeholder-shaped text inside a string variable stays inert.
func TestSubstitutionIsNotReexpanded(t *testing.T) {
	res, err := Fmt("f({{a}})", "a", "{{b}}", "b", 1)
	if err != nil {
		t.Fatal(err)
	}
	if res != `f("{{b}}")` {
		t.Errorf("Fmt = %q", res)
	}
}

func TestFmtErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		pairs []any
	}{
		{"unknown placeholder", "f({{y}})", []any{"x", 1}},
		{"odd argument count", "f({{x}})", []any{"x"}},
		{"name not a string", "f({{x}})", []any{1, 2}},
		{"unsupported value type", "f({{x}})", []any{"x", struct{}{}}},
		{"unterminated string", "'abc", nil},
		{"unterminated block comment", "a /* b", nil},
		{"unterminated regex", "x = /ab", nil},
		{"regex hits newline", "x = /ab\n/", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fmt(tt.src, tt.pairs...)
			if err == nil {
				t.Fatalf("Fmt(%q) did not fail", tt.src)
			}
			if !errors.Is(err, ErrTemplate) {
				t.Errorf("error %v does not wrap ErrTemplate", err)
			}
		})
	}
}

func TestFmtRejectsNonFiniteFloat(t *testing.T) {
	inf := 1.0
	for i := 0; i < 10; i++ {
		inf *= 1e100
	}
	if _, err := Fmt("f({{x}})", "x", inf); err == nil {
		t.Errorf("Fmt accepted a non-finite float")
	}
}
