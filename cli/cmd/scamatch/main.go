// Command scamatch reconciles a suppression file against the raw output of a
// static-analysis run. It reads the diagnostic stream from stdin, pairs lines
// with suppression patterns, reports stale suppressions and new findings, and
// exits non-zero when new findings exist so CI can gate on it.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"scagate/cli/internal/align"
	"scagate/cli/internal/config"
	"scagate/cli/internal/erruser"
	"scagate/cli/internal/report"
	"scagate/cli/internal/scan"
	"scagate/cli/internal/suppress"
	"scagate/cli/internal/verbose"
	"scagate/cli/internal/version"
)

// errExit is an error that carries an exit code for the CLI. Use errors.As to detect it.
type errExit int

func (e errExit) Error() string {
	return "exit " + strconv.Itoa(int(e))
}

// Exit codes: 0 gate passes, 1 new findings (or stale with --fail-stale),
// 2 fatal configuration, parse, or I/O error.
const (
	exitFindings = 1
	exitFatal    = 2
)

// matcherIn is the diagnostic stream. Tests may replace it.
var matcherIn io.Reader = os.Stdin

// matcherOut is the report writer. Tests may replace it to capture output.
var matcherOut io.Writer = os.Stdout

// loadConfig loads the effective configuration. Tests may replace it to keep
// runs hermetic from user config files and the environment.
var loadConfig = func(o *config.Overrides) (*config.Config, error) {
	return config.Load(config.LoadOptions{Overrides: o})
}

func main() {
	os.Exit(Run())
}

// Run is the entry point for the CLI, exported for testing.
func Run() int {
	return runCLI(os.Args[1:])
}

func runCLI(args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		var exitErr errExit
		if errors.As(err, &exitErr) {
			return int(exitErr)
		}
		fmt.Fprintln(os.Stderr, err)
		if u := errors.Unwrap(err); u != nil {
			fmt.Fprintf(os.Stderr, "Details: %v\n", u)
		}
		return exitFatal
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scamatch [flags] <suppressions-file>",
		Short: "Suppress triaged findings in static-analysis output",
		Long: `Scamatch aligns the suppression file against the analysis output read from
stdin: every suppression line is a full-line regex, and the best
order-preserving pairing between patterns and output lines is computed.
Output lines no pattern accounts for are new findings and fail the run;
patterns matching nothing are reported as stale so they can be cleaned up.`,
		Version: version.String(),
		Args:    cobra.ExactArgs(1),
		RunE:    runMatch,
	}
	cmd.Flags().CountP("verbose", "v", "increase verbosity (repeatable; -v explains results)")
	cmd.Flags().String("suppressions-file-not-found", "", "policy when the suppressions file is missing: pass, empty, or error")
	cmd.Flags().Bool("fail-stale", false, "also exit non-zero when stale suppressions exist")
	cmd.Flags().String("color", "", "report color mode: auto, always, or never")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

// overridesFromFlags returns config overrides for flags the user set.
func overridesFromFlags(cmd *cobra.Command) *config.Overrides {
	o := &config.Overrides{}
	changed := false
	if f := cmd.Flags().Lookup("suppressions-file-not-found"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetString("suppressions-file-not-found")
		o.Policy = &v
		changed = true
	}
	if f := cmd.Flags().Lookup("color"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetString("color")
		o.Color = &v
		changed = true
	}
	if f := cmd.Flags().Lookup("fail-stale"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool("fail-stale")
		o.FailStale = &v
		changed = true
	}
	if !changed {
		return nil
	}
	return o
}

func runMatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	level, _ := cmd.Flags().GetCount("verbose")

	cfg, err := loadConfig(overridesFromFlags(cmd))
	if err != nil {
		return err
	}
	policy := suppress.Policy(cfg.Policy)
	report.Colorize(cfg.Color)
	log := verbose.New(matcherOut, level)
	log.Printf(2, "Option settings: policy=%s color=%s fail-stale=%v verbosity=%d",
		cfg.Policy, cfg.Color, cfg.FailStale, level)

	log.Printf(2, "Reading suppressions from '%s'", path)
	pats, err := suppress.Load(path)
	if err != nil {
		if !errors.Is(err, suppress.ErrFileMissing) {
			return err
		}
		switch policy {
		case suppress.PolicyError:
			return erruser.New(fmt.Sprintf("Suppressions file %s does not exist.", path), err)
		case suppress.PolicyPass:
			// Escape hatch for targets nobody has curated yet:
			// everything passes through, the gate always opens.
			log.Println(1, "No suppressions file; passing all input through unchecked.")
			lines, rerr := scan.ReadLines(matcherIn)
			if rerr != nil {
				return erruser.New("Could not read the diagnostic stream.", rerr)
			}
			if werr := report.Echo(matcherOut, lines); werr != nil {
				return erruser.New("Could not write the report.", werr)
			}
			return nil
		case suppress.PolicyEmpty:
			pats = nil
		}
	}
	log.Printf(2, "Suppression patterns loaded: %d", len(pats))

	log.Println(2, "Reading input lines (static-analysis output) from stdin")
	lines, err := scan.ReadLines(matcherIn)
	if err != nil {
		return erruser.New("Could not read the diagnostic stream.", err)
	}
	log.Printf(2, "Input lines read: %d", len(lines))

	res := align.Align(len(pats), len(lines), func(p, t int) bool {
		return pats[p].Matches(lines[t].Text)
	})
	log.Printf(3, "alignment: %d matched, %d stale, %d new", res.Matched, res.Stale, res.New)

	if err := report.Write(matcherOut, res, pats, lines, log); err != nil {
		return erruser.New("Could not write the report.", err)
	}

	if res.New > 0 {
		log.Println(1, "There were unmatched input lines, exiting with error.")
		return errExit(exitFindings)
	}
	if cfg.FailStale && res.Stale > 0 {
		log.Println(1, "There were unmatched suppressions, exiting with error.")
		return errExit(exitFindings)
	}
	log.Println(1, "Exiting successfully.")
	return nil
}
