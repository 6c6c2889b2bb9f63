package official

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	jpholiday "github.com/rabitt1ove/jpholiday-engine"
)

// Parse reads the Cabinet Office holiday CSV (already decoded to UTF-8) and
// validates its format. Rows come back in file order.
func Parse(r io.Reader) ([]jpholiday.Holiday, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("unexpected header columns: %d (expected 2)", len(header))
	}
	if !strings.Contains(header[0], "国民の祝日") {
		return nil, fmt.Errorf("unexpected header: %q (expected to contain '国民の祝日')", header[0])
	}

	var holidays []jpholiday.Holiday
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 columns, got %d", line, len(record))
		}

		dateStr := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if dateStr == "" || name == "" {
			continue
		}

		t, err := time.Parse("2006/1/2", dateStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q: %w", line, dateStr, err)
		}
		holidays = append(holidays, jpholiday.Holiday{Date: t, Name: name})
	}
	return holidays, nil
}
