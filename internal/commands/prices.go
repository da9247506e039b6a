package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wealthpulse-dev/wealthpulse/internal/config"
	"github.com/wealthpulse-dev/wealthpulse/internal/parser"
)

func newPricesCommand() *cobra.Command {
	var configPath string
	var latest bool

	cmd := &cobra.Command{
		Use:   "prices [file]",
		Short: "Parse a price database and print its records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			} else {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				path = cfg.PriceDB
			}
			return runPrices(cmd.OutOrStdout(), path, latest)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "config file used when no file argument is given")
	cmd.Flags().BoolVar(&latest, "latest", false, "print only the latest price per symbol, with the change since the first record")

	return cmd
}

func runPrices(w io.Writer, path string, latest bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading price database: %w", err)
	}

	// The grammar separates records with exactly one line ending, so the
	// conventional newline at end of file is trimmed before parsing.
	input := strings.TrimRight(string(data), "\r\n")

	db, rest, perr := parser.PriceDatabase(parser.NewCursor(input))
	if perr != nil {
		return fmt.Errorf("parsing %s: %w", path, perr)
	}
	if rem := rest.Rest(); rem != "" {
		return fmt.Errorf("parsing %s: %s: unparsed input remains", path, rest.Position())
	}

	if latest {
		for _, symbol := range db.Symbols() {
			price, _ := db.Latest(symbol)
			change, err := db.Change(symbol)
			if err != nil {
				return fmt.Errorf("computing change for %s: %w", symbol, err)
			}
			fmt.Fprintf(w, "%s %s %s (%s)\n", price.Date, price.Symbol, price.Amount, change)
		}
		return nil
	}

	for _, price := range db {
		fmt.Fprintf(w, "%s %s %s\n", price.Date, price.Symbol, price.Amount)
	}
	fmt.Fprintf(w, "%d price record(s)\n", len(db))
	return nil
}
