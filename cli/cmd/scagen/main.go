// Command scagen turns literal diagnostic lines into suppression patterns.
// It reads lines from stdin and writes one full-line pattern per input line
// to stdout, ready to paste into a suppression file for scamatch.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"scagate/cli/internal/erruser"
	"scagate/cli/internal/genpat"
	"scagate/cli/internal/version"
)

// genIn and genOut are the transform's ends. Tests may replace them.
var (
	genIn  io.Reader = os.Stdin
	genOut io.Writer = os.Stdout
)

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
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scagen",
		Short: "Generate suppression patterns from literal diagnostic lines",
		Long: `Scagen escapes each input line into a regex matching exactly that line.
The relaxation flags widen patterns for the parts of a diagnostic that drift
between analysis runs: indentation and numbers (line numbers, counts).`,
		Version: version.String(),
		Args:    cobra.NoArgs,
		RunE:    runGen,
	}
	cmd.Flags().BoolP("indent", "i", false, "relax leading indentation (match any non-zero run of blanks)")
	cmd.Flags().BoolP("nums", "n", false, "relax numbers (match any non-empty run of digits)")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

func runGen(cmd *cobra.Command, args []string) error {
	indent, _ := cmd.Flags().GetBool("indent")
	nums, _ := cmd.Flags().GetBool("nums")
	opts := genpat.Options{RelaxIndent: indent, RelaxNums: nums}
	if err := genpat.GenerateAll(genIn, genOut, opts); err != nil {
		return erruser.New("Could not transform the input lines.", err)
	}
	return nil
}
