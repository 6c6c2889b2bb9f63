package jpholiday

import (
	"fmt"
	"time"
)

// YearRange is an inclusive range of years. When Unbounded is set the range
// has no upper end and To is ignored.
type YearRange struct {
	From      int
	To        int
	Unbounded bool
}

// Contains reports whether year falls within the range.
func (r YearRange) Contains(year int) bool {
	return r.From <= year && (r.Unbounded || year <= r.To)
}

func (r YearRange) String() string {
	if r.Unbounded {
		return fmt.Sprintf("%d-", r.From)
	}
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// since returns a range open towards the future.
func since(from int) YearRange { return YearRange{From: from, Unbounded: true} }

// span returns the closed range from..to.
func span(from, to int) YearRange { return YearRange{From: from, To: to} }

type ruleKind int

const (
	kindFixed ruleKind = iota
	kindNthWeekday
	kindVernalEquinox
	kindAutumnalEquinox
)

// Rule is one row of the statutory holiday table: a name, the years in which
// it applies, and the formula that places it in a year.
type Rule struct {
	Years YearRange
	Name  string

	kind    ruleKind
	month   time.Month
	day     int          // kindFixed
	weekday time.Weekday // kindNthWeekday
	nth     int          // kindNthWeekday
}

func fixed(years YearRange, name string, month time.Month, day int) Rule {
	return Rule{Years: years, Name: name, kind: kindFixed, month: month, day: day}
}

func nthMonday(years YearRange, name string, month time.Month, nth int) Rule {
	return Rule{Years: years, Name: name, kind: kindNthWeekday, month: month, weekday: time.Monday, nth: nth}
}

func equinox(years YearRange, name string, kind ruleKind) Rule {
	return Rule{Years: years, Name: name, kind: kind}
}

// Date returns the date of the holiday in year. It reports false when the
// formula has no answer for that year, which happens for equinox days outside
// the fitted range. Date does not check r.Years.
func (r Rule) Date(year int) (time.Time, bool) {
	switch r.kind {
	case kindFixed:
		return civil(year, r.month, r.day), true
	case kindNthWeekday:
		t, err := NthWeekday(year, r.month, r.weekday, r.nth)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case kindVernalEquinox:
		return VernalEquinox(year)
	case kindAutumnalEquinox:
		return AutumnalEquinox(year)
	}
	return time.Time{}, false
}

// Source:
//   - 内閣府「国民の祝日」について https://www8.cao.go.jp/chosei/shukujitsu/gaiyou.html
//   - 国立天文台 暦要項 https://eco.mtk.nao.ac.jp/koyomi/yoko/
var rules = []Rule{
	fixed(since(1949), "元日", time.January, 1),
	fixed(span(1949, 1999), "成人の日", time.January, 15),
	nthMonday(since(2000), "成人の日", time.January, 2),
	fixed(since(1967), "建国記念の日", time.February, 11),
	equinox(since(1949), "春分の日", kindVernalEquinox),
	fixed(span(1949, 1988), "天皇誕生日", time.April, 29),
	fixed(span(1989, 2006), "みどりの日", time.April, 29),
	fixed(since(2007), "昭和の日", time.April, 29),
	fixed(since(1949), "憲法記念日", time.May, 3),
	fixed(since(2007), "みどりの日", time.May, 4),
	fixed(since(1949), "こどもの日", time.May, 5),
	fixed(span(1996, 2002), "海の日", time.July, 20),
	nthMonday(since(2003), "海の日", time.July, 3),
	fixed(span(1966, 2002), "敬老の日", time.September, 15),
	nthMonday(since(2003), "敬老の日", time.September, 3),
	equinox(since(1948), "秋分の日", kindAutumnalEquinox),
	fixed(span(1966, 1999), "体育の日", time.October, 10),
	nthMonday(since(2000), "体育の日", time.October, 2),
	fixed(since(1948), "文化の日", time.November, 3),
	fixed(since(1948), "勤労感謝の日", time.November, 23),
	fixed(since(1989), "天皇誕生日", time.December, 23),

	// Ceremonial holidays enacted for a single year.
	fixed(span(1959, 1959), "皇太子・明仁親王の結婚の儀", time.April, 10),
	fixed(span(1989, 1989), "昭和天皇の大喪の礼", time.February, 24),
	fixed(span(1990, 1990), "即位の礼正殿の儀", time.November, 12),
	fixed(span(1993, 1993), "皇太子・徳仁親王の結婚の儀", time.June, 9),
}

// Rules returns a copy of the statutory holiday table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Evaluate returns the statutory holidays of year in rule-table order. The
// result is not sorted and contains no substitute or citizens' holidays.
func Evaluate(year int) []Holiday {
	var days []Holiday
	for _, r := range rules {
		if !r.Years.Contains(year) {
			continue
		}
		if t, ok := r.Date(year); ok {
			days = append(days, Holiday{Date: t, Name: r.Name})
		}
	}
	return days
}
