package jpholiday

import "time"

// IsBusinessDay reports whether the given date is a business day
// (neither a weekend nor a holiday).
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.IsHoliday(t)
}

// searchBounds returns the years that can contain a holiday: the supported
// range widened to cover every custom holiday. Callers must hold c.mu.
func (c *Calendar) searchBounds() (lo, hi int) {
	lo, hi = MinYear, MaxYear
	for d := range c.custom {
		lo = min(lo, d.year)
		hi = max(hi, d.year)
	}
	return lo, hi
}

// NextHoliday returns the next holiday strictly after the given date.
// Returns false if no holiday follows within the supported range.
func (c *Calendar) NextHoliday(t time.Time) (Holiday, bool) {
	d := dateFromTime(t)

	c.mu.RLock()
	defer c.mu.RUnlock()

	lo, hi := c.searchBounds()
	for y := max(d.year, lo); y <= hi; y++ {
		for _, h := range c.year(y) {
			if dateFromTime(h.Date).after(d) {
				return h, true
			}
		}
	}
	return Holiday{}, false
}

// PreviousHoliday returns the most recent holiday strictly before the given date.
// Returns false if no holiday precedes within the supported range.
func (c *Calendar) PreviousHoliday(t time.Time) (Holiday, bool) {
	d := dateFromTime(t)

	c.mu.RLock()
	defer c.mu.RUnlock()

	lo, hi := c.searchBounds()
	for y := min(d.year, hi); y >= lo; y-- {
		days := c.year(y)
		for i := len(days) - 1; i >= 0; i-- {
			if dateFromTime(days[i].Date).before(d) {
				return days[i], true
			}
		}
	}
	return Holiday{}, false
}

// NextBusinessDay returns the next business day on or after the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	cur := dateFromTime(t).toTime()
	for i := 0; i < 366; i++ {
		if c.IsBusinessDay(cur) {
			return cur
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return time.Time{}
}

// PreviousBusinessDay returns the most recent business day on or before the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (c *Calendar) PreviousBusinessDay(t time.Time) time.Time {
	cur := dateFromTime(t).toTime()
	for i := 0; i < 366; i++ {
		if c.IsBusinessDay(cur) {
			return cur
		}
		cur = cur.AddDate(0, 0, -1)
	}
	return time.Time{}
}

// BusinessDaysBetween returns the count of business days in the range [from, to] inclusive.
// If from is after to, returns 0.
func (c *Calendar) BusinessDaysBetween(from, to time.Time) int {
	fromD := dateFromTime(from)
	toD := dateFromTime(to)
	if toD.before(fromD) {
		return 0
	}

	holidays := make(map[date]bool)
	for _, h := range c.holidaysInRange(fromD, toD) {
		holidays[dateFromTime(h.Date)] = true
	}

	count := 0
	cur := fromD.toTime()
	end := toD.toTime()
	for !cur.After(end) {
		wd := cur.Weekday()
		if wd != time.Saturday && wd != time.Sunday && !holidays[dateFromTime(cur)] {
			count++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return count
}

// --- Package-level convenience functions ---

// IsBusinessDay reports whether the given date is a business day.
func IsBusinessDay(t time.Time) bool { return defaultCal.IsBusinessDay(t) }

// NextHoliday returns the next holiday strictly after the given date.
func NextHoliday(t time.Time) (Holiday, bool) { return defaultCal.NextHoliday(t) }

// PreviousHoliday returns the most recent holiday strictly before the given date.
func PreviousHoliday(t time.Time) (Holiday, bool) { return defaultCal.PreviousHoliday(t) }

// NextBusinessDay returns the next business day on or after the given date.
func NextBusinessDay(t time.Time) time.Time { return defaultCal.NextBusinessDay(t) }

// PreviousBusinessDay returns the most recent business day on or before the given date.
func PreviousBusinessDay(t time.Time) time.Time { return defaultCal.PreviousBusinessDay(t) }

// BusinessDaysBetween returns the count of business days in the range [from, to].
func BusinessDaysBetween(from, to time.Time) int { return defaultCal.BusinessDaysBetween(from, to) }
