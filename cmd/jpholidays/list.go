package main

import (
	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jpholiday-engine/internal/config"
	"github.com/rabitt1ove/jpholiday-engine/internal/render"
)

const (
	listUsage   = "list"
	listShort   = "Print the holidays of a range of years"
	listLong    = "This command prints every holiday from the first day of --from to the last day of --to, one per line, annotated with its era year."
	listExample = "jpholidays list --from 1989 --to 1989 --format json"

	fromFlag     = "from"
	fromDesc     = "first year (inclusive)"
	toFlag       = "to"
	toDesc       = "last year (inclusive)"
	formatFlag   = "format"
	formatDesc   = "output format: csv or json"
	encodingFlag = "encoding"
	encodingDesc = "output encoding: utf-8 or shift_jis"
)

func newListCmd(a *app) *cobra.Command {
	var from, to int

	c := &cobra.Command{
		Use:     listUsage,
		Short:   listShort,
		Long:    listLong,
		Example: listExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := render.Collect(cmd.Context(), from, to, a.cfg.Parallel)
			if err != nil {
				return err
			}
			rows, err := render.Rows(days)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), rows, render.Options{
				Format:   a.cfg.Output.Format,
				Encoding: a.cfg.Output.Encoding,
			})
		},
	}

	c.Flags().IntVarP(&from, fromFlag, "f", 0, fromDesc)
	c.Flags().IntVarP(&to, toFlag, "t", 0, toDesc)
	c.Flags().String(formatFlag, "csv", formatDesc)
	c.Flags().String(encodingFlag, "utf-8", encodingDesc)
	mustRequire(c, fromFlag, toFlag)
	mustBind(a.v, config.KeyOutputFormat, c.Flags().Lookup(formatFlag))
	mustBind(a.v, config.KeyOutputEncoding, c.Flags().Lookup(encodingFlag))
	return c
}
