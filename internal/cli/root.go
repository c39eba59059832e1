// Package cli implements the supermarket command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Vazpera/supermarket/internal/dashboard"
	"github.com/Vazpera/supermarket/internal/errors"
	"github.com/Vazpera/supermarket/internal/logger"
	"github.com/Vazpera/supermarket/internal/metrics"
)

// rootCmd runs the live dashboard when invoked with no subcommand.
var rootCmd = &cobra.Command{
	Use:   "supermarket",
	Short: "Live terminal dashboard for host system vitals",
	Long: `Supermarket is a single-screen terminal dashboard for host system vitals:
CPU and memory utilization gauges, the top processes by resident memory,
and the host's identity and hardware specs.

The dashboard redraws with fresh metrics after every key press. Press q to
quit; the left and right arrows cycle the pane selection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

// Execute runs the root command. Fatal errors print their structured
// message to stderr and exit nonzero; a clean quit exits zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dashboardCommand guards for an interactive terminal, then runs the
// full-screen dashboard. The TUI gets a noop logger: stray writes would
// corrupt the alternate screen.
func dashboardCommand() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"Standard output is not a terminal",
			"Run supermarket from an interactive terminal, or use 'supermarket snapshot' for scriptable output.")
	}

	provider := metrics.NewSystemProvider(logger.Noop())
	return dashboard.Run(provider, logger.Noop())
}
