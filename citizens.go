package jpholiday

import "time"

// CitizensHolidayName is the name given to a 国民の休日, a weekday that lies
// between two holidays.
const CitizensHolidayName = "国民の休日"

// CitizensHolidays returns days with the 国民の休日 of year added. days must be
// sorted by date and already include substitute holidays. The input slice is
// not modified.
//
// From 1988 on, a day sandwiched between two holidays is itself a holiday,
// unless it is a Sunday or a Monday. A Monday in that position is already
// taken by the 振替休日 of the preceding Sunday.
func CitizensHolidays(year int, days []Holiday) []Holiday {
	if year <= 1987 || len(days) == 0 {
		return clone(days)
	}
	out := make([]Holiday, 0, len(days)+2)
	out = append(out, days[0])
	for i := 1; i < len(days); i++ {
		prev, cur := days[i-1], days[i]
		if mid := nextDay(prev.Date); nextDay(mid).Equal(cur.Date) {
			if wd := mid.Weekday(); wd != time.Sunday && wd != time.Monday {
				out = append(out, Holiday{Date: mid, Name: CitizensHolidayName})
			}
		}
		out = append(out, cur)
	}
	return out
}
