package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wealthpulse-dev/wealthpulse/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "wealthpulse",
		Short:   "Parse plain-text ledger journals and price databases",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newPricesCommand())
	rootCmd.AddCommand(newHeaderCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
