package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	jpholiday "github.com/rabitt1ove/jpholiday-engine"
	"github.com/rabitt1ove/jpholiday-engine/internal/render"
)

const (
	eraUsage   = "era YEAR"
	eraShort   = "Print the Japanese era year of a Gregorian year"
	eraExample = "jpholidays era 1989"
)

func newEraCmd() *cobra.Command {
	return &cobra.Command{
		Use:     eraUsage,
		Short:   eraShort,
		Example: eraExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			name, eraYear, ok := jpholiday.EraOf(year)
			if !ok {
				return fmt.Errorf("%w %d", render.ErrNoEra, year)
			}
			row := render.Row{Era: name, EraYear: eraYear}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), row.Label())
			return err
		},
	}
}
