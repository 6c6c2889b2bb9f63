package render

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	jpholiday "github.com/rabitt1ove/jpholiday-engine"
	"github.com/rabitt1ove/jpholiday-engine/internal/logger"
)

// MaxYears is the widest range Collect accepts.
const MaxYears = 10000

// ErrRangeTooWide is returned by Collect for ranges spanning more than MaxYears.
var ErrRangeTooWide = errors.New("year range too wide")

// Collect computes the holidays of every year in [from, to] and returns them
// in date order. Years are computed concurrently, at most parallel at a time;
// each year is independent, so the result does not depend on parallel.
func Collect(ctx context.Context, from, to, parallel int) ([]jpholiday.Holiday, error) {
	if from > to {
		return nil, fmt.Errorf("invalid year range %d-%d: from is after to", from, to)
	}
	// The unsigned difference is exact for from <= to, even where to-from
	// overflows int.
	if uint64(to)-uint64(from) >= MaxYears {
		return nil, fmt.Errorf("%w: %d-%d spans more than %d years", ErrRangeTooWide, from, to, MaxYears)
	}
	if parallel < 1 {
		parallel = 1
	}

	years := make([][]jpholiday.Holiday, to-from+1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range years {
		year := from + i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			years[i] = jpholiday.HolidaysForYear(year)
			logger.L().Debug().Int("year", year).Int("holidays", len(years[i])).Msg("year computed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []jpholiday.Holiday
	for _, days := range years {
		out = append(out, days...)
	}
	return out, nil
}
