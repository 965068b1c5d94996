package genpat

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

// fullMatch compiles pat with the same full-line anchoring the matcher uses.
func fullMatch(t *testing.T, pat, text string) bool {
	t.Helper()
	re, err := regexp.Compile(`\A(?:` + pat + `)\z`)
	if err != nil {
		t.Fatalf("generated pattern %q does not compile: %v", pat, err)
	}
	return re.MatchString(text)
}

func TestGenerate_literalRoundTrip(t *testing.T) {
	t.Parallel()
	lines := []string{
		"",
		"plain warning text",
		"src/main.c:42: warning: unused variable 'x' [-Wunused-variable]",
		"count > 0 && *p == '.'",
		"weird $HOME (really?) [sic] {braces} ^caret",
		"back\\slash and C:\\path\\file",
		"a+b*c?d.e",
		"unicode: комментарий überschritten",
	}
	for _, line := range lines {
		pat := Generate(line, Options{})
		if !fullMatch(t, pat, line) {
			t.Errorf("pattern %q does not match its own source %q", pat, line)
		}
	}
}

func TestGenerate_metacharactersStayLiteral(t *testing.T) {
	t.Parallel()
	pat := Generate("foo.bar", Options{})
	if fullMatch(t, pat, "fooXbar") {
		t.Errorf("pattern %q should not treat '.' as a wildcard", pat)
	}
	pat = Generate("a*", Options{})
	if fullMatch(t, pat, "aaa") || !fullMatch(t, pat, "a*") {
		t.Errorf("pattern %q should match only the literal text", pat)
	}
}

func TestGenerate_escaping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dot", "a.b", `a\.b`},
		{"star plus question", "x*y+z?", `x\*y\+z\?`},
		{"brackets parens brace", "[({", `\[\(\{`},
		{"closing counterparts untouched", "])}", `])}`},
		{"anchors", "^start$", `\^start\$`},
		{"backslash doubled first", `a\.b`, `a\\\.b`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.in, Options{}); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerate_numRelaxation(t *testing.T) {
	t.Parallel()
	pat := Generate("line 42: SC2086", Options{RelaxNums: true})
	if pat != "line [0-9]+: SC[0-9]+" {
		t.Errorf("Generate() = %q", pat)
	}
	for _, text := range []string{"line 42: SC2086", "line 7: SC2086", "line 987654: SC1000"} {
		if !fullMatch(t, pat, text) {
			t.Errorf("pattern %q should match %q", pat, text)
		}
	}
	if fullMatch(t, pat, "line : SC2086") {
		t.Errorf("pattern %q must require at least one digit", pat)
	}
}

func TestGenerate_indentRelaxation(t *testing.T) {
	t.Parallel()
	pat := Generate("   foo", Options{RelaxIndent: true})
	if pat != "[[:blank:]]+foo" {
		t.Errorf("Generate() = %q", pat)
	}
	for _, text := range []string{"\tfoo", "    foo", " foo"} {
		if !fullMatch(t, pat, text) {
			t.Errorf("pattern %q should match %q", pat, text)
		}
	}
	if fullMatch(t, pat, "foo") {
		t.Errorf("pattern %q must require some indentation", pat)
	}

	// Zero original indentation keeps requiring exactly none.
	pat = Generate("foo", Options{RelaxIndent: true})
	if pat != "foo" {
		t.Errorf("Generate() = %q, want %q", pat, "foo")
	}
	if fullMatch(t, pat, " foo") {
		t.Errorf("pattern %q must reject indented input", pat)
	}
}

func TestGenerate_combinedRelaxations(t *testing.T) {
	t.Parallel()
	pat := Generate("\t  at line 10 of file.c", Options{RelaxIndent: true, RelaxNums: true})
	want := "[[:blank:]]+at line [0-9]+ of file\\.c"
	if pat != want {
		t.Errorf("Generate() = %q, want %q", pat, want)
	}
	if !fullMatch(t, pat, "    at line 9999 of file.c") {
		t.Errorf("pattern %q should tolerate both relaxations at once", pat)
	}
}

func TestGenerateAll_preservesOrder(t *testing.T) {
	t.Parallel()
	in := strings.NewReader("first 1\nsecond 2\n")
	var out bytes.Buffer
	if err := GenerateAll(in, &out, Options{RelaxNums: true}); err != nil {
		t.Fatalf("GenerateAll() error = %v", err)
	}
	want := "first [0-9]+\nsecond [0-9]+\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
