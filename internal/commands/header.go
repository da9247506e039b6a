package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wealthpulse-dev/wealthpulse/internal/parser"
)

func newHeaderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header <text>",
		Short: "Parse a transaction header line and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader(cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

func runHeader(w io.Writer, line string) error {
	header, rest, err := parser.Header(parser.NewCursor(line))
	if err != nil {
		return fmt.Errorf("parsing header: %w", err)
	}

	fmt.Fprintf(w, "date:    %s\n", header.Date)
	fmt.Fprintf(w, "status:  %s\n", header.Status)
	fmt.Fprintf(w, "code:    %s\n", orAbsent(header.Code))
	fmt.Fprintf(w, "payee:   %q\n", header.Payee)
	fmt.Fprintf(w, "comment: %s\n", orAbsent(header.Comment))
	if rem := rest.Rest(); rem != "" {
		fmt.Fprintf(w, "rest:    %q\n", rem)
	}
	return nil
}

func orAbsent(s *string) string {
	if s == nil {
		return "(absent)"
	}
	return fmt.Sprintf("%q", *s)
}
