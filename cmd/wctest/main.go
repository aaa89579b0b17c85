package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	harness "github.com/wctest-dev/wctest/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wctest",
		Short: "Canonical HTML tooling for component test fixtures",
		Long: `wctest ships the diagnostic side of the component test harness
as a command line tool:

  • fmt        pretty-print markup the way failing assertions do
  • normalize  reduce markup to the canonical comparison form
  • version    print build information

Fixtures formatted with 'wctest fmt' diff cleanly against matcher
output, and 'wctest normalize' shows exactly what the structural
matchers compare.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		fmtCmd(),
		normalizeCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

// renderError formats a command error for stderr. Structured harness
// errors keep their detail, suggestion, and cause sections.
func renderError(err error) string {
	var he *harness.HarnessError
	if errors.As(err, &he) {
		return "\033[31mError:\033[0m " + he.Format() + "\n"
	}
	return fmt.Sprintf("\033[31mError:\033[0m %s\n", err)
}
