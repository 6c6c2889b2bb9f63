package main

import (
	"bufio"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	jpholiday "github.com/rabitt1ove/jpholiday-engine"
	"github.com/rabitt1ove/jpholiday-engine/internal/config"
	"github.com/rabitt1ove/jpholiday-engine/internal/logger"
	"github.com/rabitt1ove/jpholiday-engine/internal/official"
	"github.com/rabitt1ove/jpholiday-engine/internal/render"
)

const (
	diffUsage = "diff"
	diffShort = "Compare computed holidays with the Cabinet Office list"
	diffLong  = "This command downloads the Cabinet Office holiday CSV and prints every date " +
		"on which it disagrees with the computed holidays, as date,kind,official,computed. " +
		"Without --from and --to, the years covered by the CSV are compared."
	diffExample = "jpholidays diff --from 1955 --to 2015 --strict"

	strictFlag  = "strict"
	strictDesc  = "exit with an error when any mismatch is found"
	urlFlag     = "url"
	urlDesc     = "download the CSV from this URL instead of resolving it through e-Gov"
	timeoutFlag = "timeout"
	timeoutDesc = "HTTP timeout per request"
	retryFlag   = "retries"
	retryDesc   = "attempts per URL for retryable responses"
)

func newDiffCmd(a *app) *cobra.Command {
	var (
		from, to int
		strict   bool
	)

	c := &cobra.Command{
		Use:     diffUsage,
		Short:   diffShort,
		Long:    diffLong,
		Example: diffExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			off, err := a.newClient(a.cfg.Official).Holidays(ctx)
			if err != nil {
				return fmt.Errorf("download official holidays: %w", err)
			}
			first, last, ok := official.Coverage(off)
			if !ok {
				return errors.New("official holiday list is empty")
			}
			if !cmd.Flags().Changed(fromFlag) {
				from = first
			}
			if !cmd.Flags().Changed(toFlag) {
				to = last
			}
			from, to = max(from, jpholiday.MinYear), min(to, jpholiday.MaxYear)

			computed, err := render.Collect(ctx, from, to, a.cfg.Parallel)
			if err != nil {
				return err
			}
			mismatches := official.Compare(off, computed, from, to)
			logger.L().Info().
				Int("from", from).
				Int("to", to).
				Int("official", len(off)).
				Int("mismatches", len(mismatches)).
				Msg("comparison finished")

			if err := writeMismatches(cmd, mismatches); err != nil {
				return err
			}
			if strict && len(mismatches) > 0 {
				return fmt.Errorf("%d mismatches between %d and %d", len(mismatches), from, to)
			}
			return nil
		},
	}

	c.Flags().IntVarP(&from, fromFlag, "f", 0, fromDesc)
	c.Flags().IntVarP(&to, toFlag, "t", 0, toDesc)
	c.Flags().BoolVar(&strict, strictFlag, false, strictDesc)
	c.Flags().String(urlFlag, "", urlDesc)
	c.Flags().Duration(timeoutFlag, 30*time.Second, timeoutDesc)
	c.Flags().Int(retryFlag, 3, retryDesc)
	mustBind(a.v, config.KeyOfficialURL, c.Flags().Lookup(urlFlag))
	mustBind(a.v, config.KeyOfficialTimeout, c.Flags().Lookup(timeoutFlag))
	mustBind(a.v, config.KeyOfficialRetries, c.Flags().Lookup(retryFlag))
	return c
}

func writeMismatches(cmd *cobra.Command, mismatches []official.Mismatch) error {
	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, m := range mismatches {
		if _, err := fmt.Fprintf(w, "%s,%s,%s,%s\n", m.Date.Format(time.DateOnly), m.Kind, m.Official, m.Computed); err != nil {
			return err
		}
	}
	return w.Flush()
}
