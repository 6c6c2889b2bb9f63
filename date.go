package jpholiday

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned when a date helper is asked for a day that
// does not exist, such as a fifth Monday in a month that has only four.
var ErrInvalidArgument = errors.New("jpholiday: invalid argument")

// date is an internal comparable key for map lookups.
// Users work with time.Time; this type is not exported.
type date struct {
	year  int
	month time.Month
	day   int
}

// dateFromTime takes the calendar date of t in its own location.
// No zone conversion is applied.
func dateFromTime(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

func (d date) toTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d date) after(other date) bool {
	return other.before(d)
}

func (d date) inRange(from, to date) bool {
	return !d.before(from) && !to.before(d)
}

// civil returns midnight UTC of the given calendar day. Holiday dates always
// use this form so they compare with ==.
func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// nextDay returns the calendar day after t.
func nextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// IsLeapYear reports whether year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// NthWeekday returns the date of the nth given weekday in the month, counting
// from the 1st. For example NthWeekday(2024, time.January, time.Monday, 2) is
// 2024-01-08.
//
// It returns an error wrapping [ErrInvalidArgument] when n is less than 1 or
// the month has fewer than n such weekdays.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) (time.Time, error) {
	if n < 1 {
		return time.Time{}, fmt.Errorf("%w: occurrence %d of %s", ErrInvalidArgument, n, weekday)
	}
	cur := civil(year, month, 1)
	count := 0
	for cur.Month() == month {
		if cur.Weekday() == weekday {
			count++
			if count == n {
				return cur, nil
			}
		}
		cur = nextDay(cur)
	}
	return time.Time{}, fmt.Errorf("%w: %d-%02d has no occurrence %d of %s",
		ErrInvalidArgument, year, int(month), n, weekday)
}
