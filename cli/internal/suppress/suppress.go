// Package suppress parses a suppression file into compiled full-line
// patterns. Parsing is a pure step: it produces the pattern sequence before
// any matching runs, so the file format, the regex predicate, and the
// alignment stay independently testable.
//
// File format: ordered text lines. A line whose first non-blank character is
// '#' is a comment. Every other line, including a blank one, is one pattern;
// file order is preserved.
package suppress

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"scagate/cli/internal/scan"
)

// ErrFileMissing reports that the suppression file does not exist. The
// caller decides what that means via the file-not-found policy.
var ErrFileMissing = errors.New("suppressions file not found")

// Pattern is one suppression entry: a full-line-anchored regular expression
// compiled from one line of the file. Nr is the 1-based file line number.
type Pattern struct {
	Nr  int
	Raw string
	re  *regexp.Regexp
}

// Matches reports whether the pattern matches the entire text (no substring
// matching).
func (p Pattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

// CompileError identifies a suppression line that is not a valid pattern.
type CompileError struct {
	Path string
	Line int
	Raw  string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s:%d: invalid suppression pattern >>%s<<: %v", e.Path, e.Line, e.Raw, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Compile compiles raw as a full-line pattern: it must match the entire
// diagnostic line, never a substring.
func Compile(raw string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + raw + `)\z`)
}

// isComment reports whether the line's first non-blank character is '#'.
func isComment(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "#")
}

// Parse reads suppression lines from r, skipping comments and compiling
// everything else (blank lines included) in order. path is used only for
// error messages. All invalid patterns are reported, joined into one error.
func Parse(path string, r io.Reader) ([]Pattern, error) {
	lines, err := scan.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var pats []Pattern
	var compileErrs []error
	for _, ln := range lines {
		if isComment(ln.Text) {
			continue
		}
		re, err := Compile(ln.Text)
		if err != nil {
			compileErrs = append(compileErrs, &CompileError{Path: path, Line: ln.Nr, Raw: ln.Text, Err: err})
			continue
		}
		pats = append(pats, Pattern{Nr: ln.Nr, Raw: ln.Text, re: re})
	}
	if len(compileErrs) > 0 {
		return nil, errors.Join(compileErrs...)
	}
	return pats, nil
}

// Load reads and parses the suppression file at path. A missing file returns
// an error wrapping ErrFileMissing; the caller applies the configured policy.
func Load(path string) ([]Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(path, f)
}
