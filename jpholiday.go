// Package jpholiday computes Japanese national holidays from the statutory
// rules instead of a precompiled list.
//
// A year's holidays are derived in three steps: the rule table yields the
// statutory holidays (国民の祝日), substitute holidays (振替休日) are added for
// holidays that fall on a Sunday, and citizens' holidays (国民の休日) are added
// for weekdays sandwiched between two holidays. Every step is a pure function
// of the year, so all functions are safe for concurrent use.
//
// Basic usage with package-level functions:
//
//	for _, h := range jpholiday.HolidaysForYear(2024) {
//		fmt.Println(h.Date.Format("2006-01-02"), h.Name)
//	}
//	jpholiday.IsHoliday(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) // true
//
// The calendar date of a time.Time is taken in its own location. Callers that
// hold instants rather than dates should convert to Asia/Tokyo first.
//
// For isolated custom holiday management, create a Calendar instance:
//
//	cal := jpholiday.New()
//	cal.AddCustomHoliday(t, "会社記念日")
package jpholiday

import (
	"sort"
	"sync"
	"time"
)

// MinYear and MaxYear bound the years the rules are defined for. The
// equinox tables end in 2099, so later years would lack 春分の日 and 秋分の日.
// A [Calendar] only reports computed holidays within these years; custom
// holidays may lie anywhere.
const (
	MinYear = 1948
	MaxYear = 2099
)

// Holiday represents a single holiday entry.
type Holiday struct {
	Date time.Time // The date of the holiday (midnight UTC).
	Name string    // The Japanese name of the holiday (e.g., "元日").
}

// HolidaysForYear returns the holidays of year sorted by date, including
// substitute and citizens' holidays. Years before 1948 have no holidays.
func HolidaysForYear(year int) []Holiday {
	days := Evaluate(year)
	sortByDate(days)
	days = SubstituteHolidays(year, days)
	days = CitizensHolidays(year, days)
	sortByDate(days)
	return days
}

func sortByDate(days []Holiday) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
}

// Calendar layers custom holidays on top of the computed ones.
// Create one with [New]. All methods are safe for concurrent use.
type Calendar struct {
	mu      sync.RWMutex
	custom  map[date]string
	removed map[date]bool
}

// New creates a new Calendar with no custom or removed holidays.
func New() *Calendar {
	return &Calendar{
		custom:  make(map[date]string),
		removed: make(map[date]bool),
	}
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New()

// computed returns HolidaysForYear(y) within the supported range and nil
// outside it.
func computed(y int) []Holiday {
	if y < MinYear || y > MaxYear {
		return nil
	}
	return HolidaysForYear(y)
}

// year returns the holidays of a single year with custom holidays applied.
// Callers must hold c.mu.
func (c *Calendar) year(y int) []Holiday {
	var result []Holiday
	for _, h := range computed(y) {
		d := dateFromTime(h.Date)
		if c.removed[d] {
			continue
		}
		if _, ok := c.custom[d]; ok {
			continue
		}
		result = append(result, h)
	}
	for d, name := range c.custom {
		if d.year == y {
			result = append(result, Holiday{Date: d.toTime(), Name: name})
		}
	}
	sortByDate(result)
	return result
}

// lookup returns the holiday name for a date, checking custom holidays first,
// then computed holidays (unless removed).
func (c *Calendar) lookup(d date) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if name, ok := c.custom[d]; ok {
		return name, true
	}
	if c.removed[d] {
		return "", false
	}
	for _, h := range computed(d.year) {
		if dateFromTime(h.Date) == d {
			return h.Name, true
		}
	}
	return "", false
}

// IsHoliday reports whether the given date is a holiday (computed or custom).
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.lookup(dateFromTime(t))
	return ok
}

// HolidayName returns the holiday name for the given date, or an empty string
// if it is not a holiday.
func (c *Calendar) HolidayName(t time.Time) string {
	name, _ := c.lookup(dateFromTime(t))
	return name
}

// HolidaysInYear returns all holidays in the given year, sorted by date.
func (c *Calendar) HolidaysInYear(year int) []Holiday {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.year(year)
}

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func (c *Calendar) HolidaysInMonth(year int, month time.Month) []Holiday {
	from := date{year: year, month: month, day: 1}
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	to := date{year: year, month: month, day: lastDay}
	return c.holidaysInRange(from, to)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive,
// sorted by date. If from is after to, returns nil.
func (c *Calendar) HolidaysBetween(from, to time.Time) []Holiday {
	fromD := dateFromTime(from)
	toD := dateFromTime(to)
	if toD.before(fromD) {
		return nil
	}
	return c.holidaysInRange(fromD, toD)
}

// Holidays returns every holiday from MinYear through MaxYear, sorted by
// date. Custom holidays outside that range are included as well.
func (c *Calendar) Holidays() []Holiday {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []Holiday
	for y := MinYear; y <= MaxYear; y++ {
		result = append(result, c.year(y)...)
	}
	for d, name := range c.custom {
		if d.year < MinYear || d.year > MaxYear {
			result = append(result, Holiday{Date: d.toTime(), Name: name})
		}
	}
	sortByDate(result)
	return result
}

// holidaysInRange collects holidays within the given date range (inclusive).
func (c *Calendar) holidaysInRange(from, to date) []Holiday {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []Holiday
	for y := from.year; y <= to.year; y++ {
		for _, h := range c.year(y) {
			if dateFromTime(h.Date).inRange(from, to) {
				result = append(result, h)
			}
		}
	}
	return result
}

// AddCustomHoliday registers a custom holiday on the given date.
// If a custom holiday already exists on that date, it is overwritten.
// If a computed holiday exists on the same date, this custom holiday takes
// precedence in lookups and list APIs.
func (c *Calendar) AddCustomHoliday(t time.Time, name string) {
	d := dateFromTime(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom[d] = name
}

// RemoveCustomHoliday removes a previously added custom holiday.
// Has no effect if no custom holiday exists on that date.
func (c *Calendar) RemoveCustomHoliday(t time.Time) {
	d := dateFromTime(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.custom, d)
}

// RemoveHoliday suppresses a computed holiday so it no longer appears in queries.
// Has no effect on custom holidays. Use [Calendar.RestoreHoliday] to undo.
//
// Suppressing a holiday does not change how substitute and citizens'
// holidays are derived for its year.
func (c *Calendar) RemoveHoliday(t time.Time) {
	d := dateFromTime(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removed[d] = true
}

// RestoreHoliday restores a previously removed computed holiday.
func (c *Calendar) RestoreHoliday(t time.Time) {
	d := dateFromTime(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.removed, d)
}

// --- Package-level convenience functions ---

// IsHoliday reports whether the given date is a holiday.
func IsHoliday(t time.Time) bool { return defaultCal.IsHoliday(t) }

// HolidayName returns the holiday name for the given date, or "".
func HolidayName(t time.Time) string { return defaultCal.HolidayName(t) }

// HolidaysInYear returns all holidays in the given year, sorted by date.
func HolidaysInYear(year int) []Holiday { return defaultCal.HolidaysInYear(year) }

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func HolidaysInMonth(year int, month time.Month) []Holiday {
	return defaultCal.HolidaysInMonth(year, month)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive.
func HolidaysBetween(from, to time.Time) []Holiday {
	return defaultCal.HolidaysBetween(from, to)
}

// Holidays returns all holidays of the supported range sorted by date.
func Holidays() []Holiday { return defaultCal.Holidays() }

// AddCustomHoliday registers a custom holiday on the default calendar.
func AddCustomHoliday(t time.Time, name string) { defaultCal.AddCustomHoliday(t, name) }

// RemoveCustomHoliday removes a custom holiday from the default calendar.
func RemoveCustomHoliday(t time.Time) { defaultCal.RemoveCustomHoliday(t) }

// RemoveHoliday suppresses a computed holiday on the default calendar.
func RemoveHoliday(t time.Time) { defaultCal.RemoveHoliday(t) }

// RestoreHoliday restores a suppressed computed holiday on the default calendar.
func RestoreHoliday(t time.Time) { defaultCal.RestoreHoliday(t) }
