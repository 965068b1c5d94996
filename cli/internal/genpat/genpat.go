// Package genpat turns literal diagnostic lines into suppression patterns.
// Each line is transformed independently: metacharacters are escaped so the
// pattern matches exactly the original text, then optional relaxations widen
// it to tolerate re-indentation and changing numbers (line numbers, counts,
// addresses) across analysis runs.
package genpat

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Fragments substituted by the relaxations. Both are valid in POSIX ERE and
// in Go's regexp, so generated files stay portable across matchers.
const (
	blankRun = "[[:blank:]]+"
	digitRun = "[0-9]+"
)

// Options selects the per-line relaxations.
type Options struct {
	// RelaxIndent replaces a non-empty run of leading blanks with a
	// fragment matching any non-zero indentation. A line with no leading
	// blanks keeps requiring exactly none.
	RelaxIndent bool
	// RelaxNums replaces every maximal run of decimal digits with a
	// fragment matching any non-empty digit run.
	RelaxNums bool
}

// escaped is the set of regex metacharacters neutralized with a backslash.
// Literal backslashes are doubled before this set is applied.
const escaped = `.*+?[(){^$`

var digits = regexp.MustCompile(`[0-9]+`)

// escape returns a pattern fragment matching exactly the literal text s.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\\' || strings.ContainsRune(escaped, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Generate transforms one literal line into one full-line suppression
// pattern according to o. The transform has no cross-line state.
func Generate(line string, o Options) string {
	prefix := ""
	if o.RelaxIndent {
		rest := strings.TrimLeft(line, " \t")
		if len(rest) < len(line) {
			prefix = blankRun
			line = rest
		}
	}
	pat := escape(line)
	if o.RelaxNums {
		// Escaping only inserts backslashes before punctuation, so
		// every digit run in pat is literal input text.
		pat = digits.ReplaceAllLiteralString(pat, digitRun)
	}
	return prefix + pat
}

// GenerateAll reads literal lines from r and writes one generated pattern
// per line to w, preserving order.
func GenerateAll(r io.Reader, w io.Writer, o Options) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		if _, err := fmt.Fprintln(w, Generate(sc.Text(), o)); err != nil {
			return err
		}
	}
	return sc.Err()
}
