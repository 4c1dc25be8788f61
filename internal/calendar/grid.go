package calendar

import "time"

// DayKeyLayout is the canonical day format used for note keys
const DayKeyLayout = "2006-01-02"

// MonthLayout is the format accepted by the month picker
const MonthLayout = "2006-01"

// Weekdays lists the grid column headers, Monday first
var Weekdays = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// MonthView is the derived grid for a reference date. It is never stored.
type MonthView struct {
	Reference time.Time
	Start     time.Time // Monday on or before the first of the month
	End       time.Time // Sunday on or after the last of the month
	Rows      int
}

// Day truncates t to its calendar day. The result is midnight UTC so that
// day arithmetic is never skewed by DST transitions in the local zone.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey returns the YYYY-MM-DD key for the calendar day of t
func DayKey(t time.Time) string {
	return Day(t).Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key back into a calendar day
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(DayKeyLayout, key)
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth reports whether a and b fall in the same month of the same year
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// FirstOfMonth returns the first day of t's month
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastOfMonth returns the last day of t's month
func LastOfMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, -1)
}

// DaysBetween returns the number of whole days from a to b
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / (24 * time.Hour))
}

// AddMonths moves t by delta months, clamping the day to the length of the
// target month (Jan 31 + 1 month is the last day of February).
func AddMonths(t time.Time, delta int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return dayInMonth(first, t.Day())
}

func dayInMonth(month time.Time, day int) time.Time {
	last := LastOfMonth(month).Day()
	return time.Date(month.Year(), month.Month(), min(day, last), 0, 0, 0, 0, time.UTC)
}

// GridStart returns the Monday that opens the grid for ref's month
func GridStart(ref time.Time) time.Time {
	d := FirstOfMonth(ref)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// GridEnd returns the Sunday that closes the grid for ref's month
func GridEnd(ref time.Time) time.Time {
	d := LastOfMonth(ref)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// RowCount returns the number of Monday-Sunday weeks spanning start..end inclusive
func RowCount(start, end time.Time) int {
	days := DaysBetween(start, end) + 1
	return (days + 6) / 7
}

// GridDays enumerates rows*7 consecutive days from start in row-major order
func GridDays(start time.Time, rows int) []time.Time {
	if rows <= 0 {
		return nil
	}
	start = Day(start)
	days := make([]time.Time, rows*7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// NewMonthView computes the grid for ref
func NewMonthView(ref time.Time) MonthView {
	ref = Day(ref)
	start := GridStart(ref)
	end := GridEnd(ref)
	return MonthView{
		Reference: ref,
		Start:     start,
		End:       end,
		Rows:      RowCount(start, end),
	}
}

// Days returns every day shown in the view
func (v MonthView) Days() []time.Time {
	return GridDays(v.Start, v.Rows)
}

// Week returns the seven days of the given row
func (v MonthView) Week(row int) []time.Time {
	if row < 0 || row >= v.Rows {
		return nil
	}
	return GridDays(v.Start.AddDate(0, 0, row*7), 1)
}
