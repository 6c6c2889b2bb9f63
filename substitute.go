package jpholiday

import "time"

// SubstituteHolidayName is the name given to a 振替休日, a day off granted
// because a national holiday fell on a Sunday.
const SubstituteHolidayName = "振替休日"

// substituteEffective is the first day on which a Sunday holiday produced a
// substitute holiday.
var substituteEffective = civil(1973, time.April, 29)

// SubstituteHolidays returns days with the 振替休日 of year added. days must
// be sorted by date. The input slice is not modified.
//
// The rule changed twice:
//   - until 1972 there are no substitute holidays;
//   - 1973-2006: the day after a Sunday holiday, from 1973-04-29 on, unless
//     that day is itself a holiday;
//   - since 2007: the first day after a Sunday holiday that is not a holiday.
func SubstituteHolidays(year int, days []Holiday) []Holiday {
	switch {
	case year <= 1972:
		return clone(days)
	case year <= 2006:
		return substituteNextDay(days)
	default:
		return substituteFirstFree(days)
	}
}

func substituteNextDay(days []Holiday) []Holiday {
	out := make([]Holiday, 0, len(days)+4)
	for i, h := range days {
		out = append(out, h)
		if h.Date.Before(substituteEffective) || h.Date.Weekday() != time.Sunday {
			continue
		}
		next := nextDay(h.Date)
		if i+1 < len(days) && days[i+1].Date.Equal(next) {
			continue
		}
		out = append(out, Holiday{Date: next, Name: SubstituteHolidayName})
	}
	return out
}

func substituteFirstFree(days []Holiday) []Holiday {
	out := make([]Holiday, 0, len(days)+4)
	for i := 0; i < len(days); {
		h := days[i]
		out = append(out, h)
		i++
		if h.Date.Weekday() != time.Sunday {
			continue
		}
		// Consecutive holidays after the Sunday push the substitute further.
		next := nextDay(h.Date)
		for i < len(days) && days[i].Date.Equal(next) {
			out = append(out, days[i])
			next = nextDay(next)
			i++
		}
		out = append(out, Holiday{Date: next, Name: SubstituteHolidayName})
	}
	return out
}

func clone(days []Holiday) []Holiday {
	out := make([]Holiday, len(days))
	copy(out, days)
	return out
}
