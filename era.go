package jpholiday

// Era is a named period of the Japanese calendar (元号).
// The year within the era is the Gregorian year minus Offset.
type Era struct {
	Name   string
	Years  YearRange
	Offset int
}

// Eras are resolved by Gregorian year only. The year in which an era changes
// belongs entirely to the later era.
var eras = []Era{
	{Name: "明治", Years: YearRange{From: 1868, To: 1911}, Offset: 1867},
	{Name: "大正", Years: YearRange{From: 1912, To: 1925}, Offset: 1911},
	{Name: "昭和", Years: YearRange{From: 1926, To: 1988}, Offset: 1925},
	{Name: "平成", Years: YearRange{From: 1989, Unbounded: true}, Offset: 1988},
}

// Eras returns the modeled eras in chronological order.
func Eras() []Era {
	out := make([]Era, len(eras))
	copy(out, eras)
	return out
}

// EraOf returns the era name and the year within that era, e.g. ("平成", 1)
// for 1989. It reports false for years before 1868.
func EraOf(year int) (name string, eraYear int, ok bool) {
	for _, e := range eras {
		if e.Years.Contains(year) {
			return e.Name, year - e.Offset, true
		}
	}
	return "", 0, false
}
