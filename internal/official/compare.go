package official

import (
	"sort"
	"time"

	jpholiday "github.com/rabitt1ove/jpholiday-engine"
)

// DerivedName is the single label the official list uses for both
// 振替休日 and 国民の休日.
const DerivedName = "休日"

// Kind classifies a Mismatch.
type Kind string

const (
	Missing Kind = "missing" // listed officially, not computed
	Extra   Kind = "extra"   // computed, not listed officially
	Renamed Kind = "renamed" // both list the day under different names
)

// Mismatch is a day on which the official list and the computed holidays
// disagree.
type Mismatch struct {
	Date     time.Time
	Kind     Kind
	Official string
	Computed string
}

// normalize maps derived holiday names to the official label.
func normalize(name string) string {
	switch name {
	case jpholiday.SubstituteHolidayName, jpholiday.CitizensHolidayName:
		return DerivedName
	}
	return name
}

// Compare returns the disagreements between official and computed holidays
// in years from..to, sorted by date.
func Compare(official, computed []jpholiday.Holiday, from, to int) []Mismatch {
	inRange := func(t time.Time) bool { return from <= t.Year() && t.Year() <= to }

	index := func(days []jpholiday.Holiday) map[string]jpholiday.Holiday {
		m := make(map[string]jpholiday.Holiday)
		for _, h := range days {
			if inRange(h.Date) {
				m[h.Date.Format(time.DateOnly)] = h
			}
		}
		return m
	}
	want, got := index(official), index(computed)

	var out []Mismatch
	for key, o := range want {
		c, ok := got[key]
		switch {
		case !ok:
			out = append(out, Mismatch{Date: o.Date, Kind: Missing, Official: o.Name})
		case normalize(c.Name) != normalize(o.Name):
			out = append(out, Mismatch{Date: o.Date, Kind: Renamed, Official: o.Name, Computed: c.Name})
		}
	}
	for key, c := range got {
		if _, ok := want[key]; !ok {
			out = append(out, Mismatch{Date: c.Date, Kind: Extra, Computed: c.Name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Coverage returns the first and last year present in days. ok is false when
// days is empty.
func Coverage(days []jpholiday.Holiday) (first, last int, ok bool) {
	if len(days) == 0 {
		return 0, 0, false
	}
	first, last = days[0].Date.Year(), days[0].Date.Year()
	for _, h := range days[1:] {
		first = min(first, h.Date.Year())
		last = max(last, h.Date.Year())
	}
	return first, last, true
}
