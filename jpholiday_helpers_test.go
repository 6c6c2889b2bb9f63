package jpholiday

import (
	"testing"
	"time"
)

func TestIsBusinessDay(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"weekday", d(2026, time.June, 10), true},
		{"saturday", d(2026, time.June, 6), false},
		{"sunday", d(2026, time.June, 7), false},
		{"before the first holiday law", d(1947, time.January, 1), true},
		{"sunday holiday before substitutes existed", d(1973, time.February, 12), true},
		{"first substitute holiday", d(1973, time.April, 30), false},
		{"substitute of the next-day regime", d(1987, time.May, 4), false},
		{"first citizens holiday", d(1988, time.May, 4), false},
		{"substitute after a holiday run", d(2026, time.May, 6), false},
		{"silver week citizens holiday", d(2009, time.September, 22), false},
		{"ceremonial holiday 1959", d(1959, time.April, 10), false},
		{"ceremonial holiday 1993", d(1993, time.June, 9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBusinessDay(tt.date); got != tt.want {
				t.Errorf("IsBusinessDay(%s) = %v, want %v",
					tt.date.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestIsBusinessDay_UsesOwnLocation(t *testing.T) {
	// 2026-01-02 (Fri) 20:00 UTC is Saturday morning in JST; each value is
	// judged by its own calendar date.
	utc := time.Date(2026, time.January, 2, 20, 0, 0, 0, time.UTC)
	if !IsBusinessDay(utc) {
		t.Errorf("IsBusinessDay(%s) = false, want true", utc.Format(time.RFC3339))
	}
	jst := utc.In(time.FixedZone("JST", 9*60*60))
	if IsBusinessDay(jst) {
		t.Errorf("IsBusinessDay(%s) = true, want false", jst.Format(time.RFC3339))
	}
}

func TestIsBusinessDay_CustomHoliday(t *testing.T) {
	cal := New()
	day := d(2026, time.June, 10)
	cal.AddCustomHoliday(day, "会社記念日")
	if cal.IsBusinessDay(day) {
		t.Error("custom holiday should not be a business day")
	}
	if !IsBusinessDay(day) {
		t.Error("default calendar should be unaffected")
	}
}

func TestNextPreviousHoliday(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(time.Time) (Holiday, bool)
		from     time.Time
		wantDate time.Time
		wantName string
	}{
		{"next 成人の日", NextHoliday, d(2026, time.January, 1), d(2026, time.January, 12), "成人の日"},
		{"next substitute", NextHoliday, d(2008, time.May, 5), d(2008, time.May, 6), SubstituteHolidayName},
		{"next ceremonial", NextHoliday, d(1990, time.November, 3), d(1990, time.November, 12), "即位の礼正殿の儀"},
		{"next from before the rules", NextHoliday, d(1900, time.January, 1), d(1948, time.September, 23), "秋分の日"},
		{"previous 元日", PreviousHoliday, d(2026, time.January, 12), d(2026, time.January, 1), "元日"},
		{"previous across years", PreviousHoliday, d(2026, time.January, 1), d(2025, time.December, 23), "天皇誕生日"},
		{"previous citizens holiday", PreviousHoliday, d(1988, time.May, 5), d(1988, time.May, 4), CitizensHolidayName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := tt.fn(tt.from)
			if !ok {
				t.Fatalf("no holiday found from %s", tt.from.Format("2006-01-02"))
			}
			if h.Date != tt.wantDate || h.Name != tt.wantName {
				t.Errorf("got %s %s, want %s %s",
					h.Date.Format("2006-01-02"), h.Name,
					tt.wantDate.Format("2006-01-02"), tt.wantName)
			}
		})
	}
}

func TestNextPreviousHoliday_OutsideRange(t *testing.T) {
	if h, ok := NextHoliday(d(2099, time.December, 23)); ok {
		t.Errorf("NextHoliday after the last holiday = %v, want none", h)
	}
	if h, ok := PreviousHoliday(d(1948, time.September, 23)); ok {
		t.Errorf("PreviousHoliday before the first holiday = %v, want none", h)
	}
}

func TestNextHoliday_CustomHoliday(t *testing.T) {
	cal := New()
	cal.AddCustomHoliday(d(2026, time.January, 5), "仕事始め休み")
	h, ok := cal.NextHoliday(d(2026, time.January, 1))
	if !ok || h.Name != "仕事始め休み" {
		t.Errorf("NextHoliday = %v, %v, want 仕事始め休み", h, ok)
	}
}

func TestNextPreviousBusinessDay(t *testing.T) {
	tests := []struct {
		name string
		fn   func(time.Time) time.Time
		from time.Time
		want time.Time
	}{
		{"next from business day", NextBusinessDay, d(2026, time.June, 5), d(2026, time.June, 5)},
		{"next drops time of day", NextBusinessDay, time.Date(2026, time.June, 5, 15, 30, 0, 0, time.UTC), d(2026, time.June, 5)},
		{"next over weekend", NextBusinessDay, d(2026, time.June, 6), d(2026, time.June, 8)},
		{"next over golden week 2026", NextBusinessDay, d(2026, time.May, 3), d(2026, time.May, 7)},
		{"next over golden week 2008", NextBusinessDay, d(2008, time.May, 3), d(2008, time.May, 7)},
		{"next over silver week 2009", NextBusinessDay, d(2009, time.September, 19), d(2009, time.September, 24)},
		{"previous from business day", PreviousBusinessDay, d(2026, time.June, 5), d(2026, time.June, 5)},
		{"previous over weekend", PreviousBusinessDay, d(2026, time.June, 7), d(2026, time.June, 5)},
		{"previous over monday holiday", PreviousBusinessDay, d(2026, time.January, 12), d(2026, time.January, 9)},
		{"previous over silver week 2009", PreviousBusinessDay, d(2009, time.September, 23), d(2009, time.September, 18)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.from); got != tt.want {
				t.Errorf("from %s got %s, want %s",
					tt.from.Format("2006-01-02"), got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestBusinessDay_ZeroOnExhaustion(t *testing.T) {
	cal := New()
	start := d(2026, time.January, 1)
	for i := -365; i <= 365; i++ {
		cal.AddCustomHoliday(start.AddDate(0, 0, i), "休業")
	}
	if got := cal.NextBusinessDay(start); !got.IsZero() {
		t.Errorf("NextBusinessDay = %s, want zero time", got.Format("2006-01-02"))
	}
	if got := cal.PreviousBusinessDay(start); !got.IsZero() {
		t.Errorf("PreviousBusinessDay = %s, want zero time", got.Format("2006-01-02"))
	}
}

func TestBusinessDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"plain week", d(2026, time.June, 8), d(2026, time.June, 14), 5},
		{"single weekend day", d(2026, time.June, 6), d(2026, time.June, 6), 0},
		{"reversed range", d(2026, time.June, 12), d(2026, time.June, 8), 0},
		// 04/29 Wed holiday, 05/03 Sun, 05/04-05/06 holidays.
		{"golden week 2026", d(2026, time.April, 29), d(2026, time.May, 6), 2},
		// 05/04 Sun みどりの日 pushes the substitute to 05/06.
		{"golden week 2008", d(2008, time.May, 1), d(2008, time.May, 7), 3},
		// 04/29 Sun gives the first 振替休日 on 04/30.
		{"golden week 1973", d(1973, time.April, 29), d(1973, time.May, 5), 3},
		{"silver week 2009", d(2009, time.September, 19), d(2009, time.September, 25), 2},
		{"whole year 2024", d(2024, time.January, 1), d(2024, time.December, 31), 249},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BusinessDaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("BusinessDaysBetween(%s, %s) = %d, want %d",
					tt.from.Format("2006-01-02"), tt.to.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
