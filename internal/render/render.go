// Package render turns computed holidays into the lines printed by the
// jpholidays command.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	jpholiday "github.com/rabitt1ove/jpholiday-engine"
)

// ErrNoEra is returned for holidays in years before the first modeled era.
var ErrNoEra = errors.New("no era for year")

// Row is one printed holiday.
type Row struct {
	Date    time.Time
	Era     string
	EraYear int
	Name    string
}

// Label returns the era annotation, e.g. "平成36年".
func (r Row) Label() string {
	return fmt.Sprintf("%s%d年", r.Era, r.EraYear)
}

type jsonRow struct {
	Date    string `json:"date"`
	Era     string `json:"era"`
	EraYear int    `json:"era_year"`
	Name    string `json:"name"`
}

// Rows annotates each holiday with the era of its year.
func Rows(days []jpholiday.Holiday) ([]Row, error) {
	rows := make([]Row, 0, len(days))
	for _, h := range days {
		era, eraYear, ok := jpholiday.EraOf(h.Date.Year())
		if !ok {
			return nil, fmt.Errorf("%s: %w %d", h.Date.Format(time.DateOnly), ErrNoEra, h.Date.Year())
		}
		rows = append(rows, Row{Date: h.Date, Era: era, EraYear: eraYear, Name: h.Name})
	}
	return rows, nil
}

// Options selects the output format and character encoding.
type Options struct {
	Format   string // csv|json
	Encoding string // utf-8|shift_jis
}

// Write prints rows to w.
//
// The csv format prints one line per holiday:
//
//	2024-01-01,平成36年,元日
func Write(w io.Writer, rows []Row, opts Options) (err error) {
	switch strings.ToLower(opts.Encoding) {
	case "", "utf-8", "utf8":
	case "shift_jis", "sjis":
		tw := transform.NewWriter(w, japanese.ShiftJIS.NewEncoder())
		defer func() {
			if cerr := tw.Close(); err == nil {
				err = cerr
			}
		}()
		w = tw
	default:
		return fmt.Errorf("unsupported encoding %q", opts.Encoding)
	}

	switch strings.ToLower(opts.Format) {
	case "", "csv":
		return writeCSV(w, rows)
	case "json":
		return writeJSON(w, rows)
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}
}

func writeCSV(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%s,%s,%s\n", r.Date.Format(time.DateOnly), r.Label(), r.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeJSON(w io.Writer, rows []Row) error {
	out := make([]jsonRow, len(rows))
	for i, r := range rows {
		out[i] = jsonRow{Date: r.Date.Format(time.DateOnly), Era: r.Era, EraYear: r.EraYear, Name: r.Name}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
