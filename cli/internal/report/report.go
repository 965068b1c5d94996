// Package report renders a classified alignment as a line-oriented diff:
// stale suppressions marked "-", new findings marked "+", and (in verbose
// mode) matches shown as a "~" rule reference followed by the "=" diagnostic
// line. Markers are stable so downstream filters and colorizers can consume
// the report without understanding patterns.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"scagate/cli/internal/align"
	"scagate/cli/internal/scan"
	"scagate/cli/internal/suppress"
	"scagate/cli/internal/verbose"
)

var (
	newLine   = color.New(color.FgRed)
	staleLine = color.New(color.FgYellow)
	matchLine = color.New(color.Faint)
)

// Colorize applies the color mode: "always" forces ANSI colors, "never"
// disables them, "auto" leaves detection to the terminal (and NO_COLOR) as
// the color library implements it.
func Colorize(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

// Write walks the alignment in presentation order and emits the report to w.
// Matches are written only through log at level 1; unmatched entries are
// always written. The summary counts land on w last, mirroring the exit rule:
// new findings fail the gate, stale suppressions do not.
func Write(w io.Writer, res align.Result, pats []suppress.Pattern, lines []scan.Line, log *verbose.Logger) error {
	for _, e := range res.Edits {
		switch e.Op {
		case align.OpMatch:
			p, t := pats[e.P], lines[e.T]
			log.Println(1, "Match:")
			log.Println(1, matchLine.Sprintf("~ %d: %s", p.Nr, p.Raw))
			log.Println(1, matchLine.Sprintf("= %d: %s", t.Nr, t.Text))
		case align.OpStale:
			p := pats[e.P]
			log.Println(1, "Unmatched suppression:")
			if _, err := fmt.Fprintln(w, staleLine.Sprintf("- %d: %s", p.Nr, p.Raw)); err != nil {
				return err
			}
		case align.OpNew:
			t := lines[e.T]
			log.Println(1, "Unmatched input line:")
			if _, err := fmt.Fprintln(w, newLine.Sprintf("+ %d: %s", t.Nr, t.Text)); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(w, "Unmatched input lines: %d\n", res.New); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Unmatched suppressions: %d\n", res.Stale); err != nil {
		return err
	}
	return nil
}

// Echo writes every diagnostic line unchanged. Used under the "pass"
// file-not-found policy, where matching is bypassed entirely.
func Echo(w io.Writer, lines []scan.Line) error {
	for _, t := range lines {
		if _, err := fmt.Fprintln(w, t.Text); err != nil {
			return err
		}
	}
	return nil
}
