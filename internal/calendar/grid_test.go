package calendar

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func drawDate(t *rapid.T) time.Time {
	y := rapid.IntRange(1900, 2200).Draw(t, "year")
	m := time.Month(rapid.IntRange(1, 12).Draw(t, "month"))
	d := rapid.IntRange(1, LastOfMonth(date(y, m, 1)).Day()).Draw(t, "day")
	return date(y, m, d)
}

func TestGridForMarch2024(t *testing.T) {
	// Mar 15, 2024 is a Friday
	ref := date(2024, 3, 15)

	start := GridStart(ref)
	if !start.Equal(date(2024, 2, 26)) {
		t.Errorf("expected start 2024-02-26, got %s", DayKey(start))
	}
	end := GridEnd(ref)
	if !end.Equal(date(2024, 3, 31)) {
		t.Errorf("expected end 2024-03-31, got %s", DayKey(end))
	}
	if rows := RowCount(start, end); rows != 5 {
		t.Errorf("expected 5 rows, got %d", rows)
	}
}

func TestGridRowCounts(t *testing.T) {
	tests := []struct {
		ref   time.Time
		start string
		end   string
		rows  int
	}{
		// Feb 2021 starts on a Monday and ends on a Sunday
		{date(2021, 2, 10), "2021-02-01", "2021-02-28", 4},
		// Apr 2024 starts on a Monday
		{date(2024, 4, 30), "2024-04-01", "2024-05-05", 5},
		// Sep 2024 starts on a Sunday
		{date(2024, 9, 1), "2024-08-26", "2024-10-06", 6},
		{date(2024, 12, 31), "2024-11-25", "2025-01-05", 6},
	}

	for _, tt := range tests {
		v := NewMonthView(tt.ref)
		if DayKey(v.Start) != tt.start {
			t.Errorf("%s: expected start %s, got %s", DayKey(tt.ref), tt.start, DayKey(v.Start))
		}
		if DayKey(v.End) != tt.end {
			t.Errorf("%s: expected end %s, got %s", DayKey(tt.ref), tt.end, DayKey(v.End))
		}
		if v.Rows != tt.rows {
			t.Errorf("%s: expected %d rows, got %d", DayKey(tt.ref), tt.rows, v.Rows)
		}
	}
}

func TestGridBoundsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ref := drawDate(t)
		start := GridStart(ref)
		end := GridEnd(ref)

		if start.Weekday() != time.Monday {
			t.Fatalf("start %s is a %s", DayKey(start), start.Weekday())
		}
		if start.After(FirstOfMonth(ref)) {
			t.Fatalf("start %s after first of month", DayKey(start))
		}
		if end.Weekday() != time.Sunday {
			t.Fatalf("end %s is a %s", DayKey(end), end.Weekday())
		}
		if end.Before(LastOfMonth(ref)) {
			t.Fatalf("end %s before last of month", DayKey(end))
		}

		span := DaysBetween(start, end) + 1
		if span%7 != 0 {
			t.Fatalf("span of %d days is not whole weeks", span)
		}
		if RowCount(start, end)*7 != span {
			t.Fatalf("rows %d do not cover %d days", RowCount(start, end), span)
		}
	})
}

func TestGridDaysProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := NewMonthView(drawDate(t))
		days := v.Days()

		if len(days) != v.Rows*7 {
			t.Fatalf("expected %d days, got %d", v.Rows*7, len(days))
		}
		if !days[0].Equal(v.Start) {
			t.Fatalf("first day %s, expected %s", DayKey(days[0]), DayKey(v.Start))
		}
		if !days[len(days)-1].Equal(v.End) {
			t.Fatalf("last day %s, expected %s", DayKey(days[len(days)-1]), DayKey(v.End))
		}
		for i := 1; i < len(days); i++ {
			if DaysBetween(days[i-1], days[i]) != 1 {
				t.Fatalf("days %s and %s are not consecutive", DayKey(days[i-1]), DayKey(days[i]))
			}
			if i%7 == 0 && days[i].Weekday() != time.Monday {
				t.Fatalf("row %d starts on %s", i/7, days[i].Weekday())
			}
		}
	})
}

func TestGridDays_Empty(t *testing.T) {
	if days := GridDays(date(2024, 3, 4), 0); days != nil {
		t.Errorf("expected nil for zero rows, got %d days", len(days))
	}
}

func TestDayKey_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 3, 15, 0, 0, 1, 0, time.Local)
	evening := time.Date(2024, 3, 15, 23, 59, 59, 0, time.Local)
	if DayKey(morning) != "2024-03-15" || DayKey(evening) != "2024-03-15" {
		t.Errorf("expected 2024-03-15 for both, got %q and %q", DayKey(morning), DayKey(evening))
	}

	parsed, err := ParseDayKey("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !SameDay(parsed, morning) {
		t.Errorf("expected round trip to 2024-03-15, got %v", parsed)
	}
}

func TestAddMonths_ClampsDay(t *testing.T) {
	tests := []struct {
		from     time.Time
		delta    int
		expected string
	}{
		{date(2024, 1, 31), 1, "2024-02-29"},
		{date(2023, 1, 31), 1, "2023-02-28"},
		{date(2024, 3, 31), -1, "2024-02-29"},
		{date(2024, 12, 15), 1, "2025-01-15"},
		{date(2024, 1, 15), -1, "2023-12-15"},
		{date(2024, 5, 31), 12, "2025-05-31"},
	}

	for _, tt := range tests {
		got := DayKey(AddMonths(tt.from, tt.delta))
		if got != tt.expected {
			t.Errorf("AddMonths(%s, %d): expected %s, got %s", DayKey(tt.from), tt.delta, tt.expected, got)
		}
	}
}

func TestMonthView_Week(t *testing.T) {
	v := NewMonthView(date(2024, 3, 15))

	week := v.Week(0)
	if len(week) != 7 || DayKey(week[0]) != "2024-02-26" || DayKey(week[6]) != "2024-03-03" {
		t.Errorf("unexpected first week: %v", week)
	}
	if v.Week(v.Rows) != nil {
		t.Error("expected nil for out of range row")
	}
	if last := v.Week(v.Rows - 1); DayKey(last[6]) != DayKey(v.End) {
		t.Errorf("expected last week to end on %s, got %s", DayKey(v.End), DayKey(last[6]))
	}
}
