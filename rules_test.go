package jpholiday

import (
	"testing"
	"time"
)

func TestYearRange_Contains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    YearRange
		year int
		want bool
	}{
		{"closed lower bound", span(1966, 2002), 1966, true},
		{"closed upper bound", span(1966, 2002), 2002, true},
		{"closed before", span(1966, 2002), 1965, false},
		{"closed after", span(1966, 2002), 2003, false},
		{"single year", span(1959, 1959), 1959, true},
		{"single year after", span(1959, 1959), 1960, false},
		{"unbounded lower bound", since(2007), 2007, true},
		{"unbounded far future", since(2007), 9999, true},
		{"unbounded before", since(2007), 2006, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.year); got != tt.want {
				t.Errorf("%v.Contains(%d) = %v, want %v", tt.r, tt.year, got, tt.want)
			}
		})
	}
}

func TestYearRange_String(t *testing.T) {
	t.Parallel()

	if got := span(1996, 2002).String(); got != "1996-2002" {
		t.Errorf("String() = %q, want 1996-2002", got)
	}
	if got := since(2003).String(); got != "2003-" {
		t.Errorf("String() = %q, want 2003-", got)
	}
}

func TestRules_Table(t *testing.T) {
	t.Parallel()

	rs := Rules()
	if len(rs) != 25 {
		t.Fatalf("expected 25 rules, got %d", len(rs))
	}
	if rs[0].Name != "元日" || rs[len(rs)-1].Name != "皇太子・徳仁親王の結婚の儀" {
		t.Errorf("unexpected table order: first %q, last %q", rs[0].Name, rs[len(rs)-1].Name)
	}

	rs[0].Name = "changed"
	if Rules()[0].Name != "元日" {
		t.Error("modifying the result of Rules should not affect the package table")
	}
}

// Rules sharing a name must never be active in the same year.
func TestRules_OneActiveRulePerName(t *testing.T) {
	t.Parallel()

	for year := MinYear; year <= MaxYear; year++ {
		seen := make(map[string]bool)
		for _, r := range rules {
			if !r.Years.Contains(year) {
				continue
			}
			if seen[r.Name] {
				t.Errorf("%d: more than one active rule named %q", year, r.Name)
			}
			seen[r.Name] = true
		}
	}
}

func TestRule_Date(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rule   Rule
		year   int
		want   time.Time
		wantOK bool
	}{
		{"fixed", fixed(since(1949), "元日", time.January, 1), 2024, civil(2024, time.January, 1), true},
		{"nth monday", nthMonday(since(2000), "成人の日", time.January, 2), 2024, civil(2024, time.January, 8), true},
		{"vernal", equinox(since(1949), "春分の日", kindVernalEquinox), 2024, civil(2024, time.March, 20), true},
		{"autumnal", equinox(since(1948), "秋分の日", kindAutumnalEquinox), 2024, civil(2024, time.September, 22), true},
		{"equinox outside table", equinox(since(1948), "秋分の日", kindAutumnalEquinox), 2100, time.Time{}, false},
		{"impossible weekday", nthMonday(since(2000), "x", time.February, 5), 2023, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.rule.Date(tt.year)
			if ok != tt.wantOK {
				t.Fatalf("Date(%d) ok = %v, want %v", tt.year, ok, tt.wantOK)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Date(%d) = %s, want %s", tt.year, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestEvaluate_TableOrder(t *testing.T) {
	t.Parallel()

	// The 1989 ceremonial holiday (Feb 24) comes from the end of the table.
	days := Evaluate(1989)
	if len(days) != 14 {
		t.Fatalf("expected 14 statutory holidays in 1989, got %d", len(days))
	}
	last := days[len(days)-1]
	if last.Name != "昭和天皇の大喪の礼" || !last.Date.Equal(civil(1989, time.February, 24)) {
		t.Errorf("last entry = %s %s, want 1989-02-24 昭和天皇の大喪の礼",
			last.Date.Format("2006-01-02"), last.Name)
	}
	for _, h := range days {
		if h.Name == SubstituteHolidayName || h.Name == CitizensHolidayName {
			t.Errorf("Evaluate should not produce derived holiday %s", h.Date.Format("2006-01-02"))
		}
	}
}

func TestEvaluate_BeforeRules(t *testing.T) {
	t.Parallel()

	if days := Evaluate(1947); len(days) != 0 {
		t.Errorf("expected no holidays in 1947, got %d", len(days))
	}
	// Only the rules starting in 1948 apply.
	if days := Evaluate(1948); len(days) != 3 {
		t.Errorf("expected 3 holidays in 1948, got %d", len(days))
	}
}

func TestEvaluate_AfterEquinoxTable(t *testing.T) {
	t.Parallel()

	for _, h := range Evaluate(2100) {
		if h.Name == "春分の日" || h.Name == "秋分の日" {
			t.Errorf("2100 should have no equinox holiday, got %s", h.Date.Format("2006-01-02"))
		}
	}
}
