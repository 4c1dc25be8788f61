package calendar

import (
	"strings"
	"time"
)

// Direction is a focus movement between grid days
type Direction int

const (
	NextDay Direction = iota
	PrevDay
	NextWeek
	PrevWeek
)

// Days returns the signed day offset for the direction
func (d Direction) Days() int {
	switch d {
	case NextDay:
		return 1
	case PrevDay:
		return -1
	case NextWeek:
		return 7
	case PrevWeek:
		return -7
	default:
		return 0
	}
}

// Notes is anything that can look up the note for a day
type Notes interface {
	Get(date time.Time) string
}

// Cell is what the presentation layer needs for one visible day
type Cell struct {
	Date           time.Time
	Note           string
	InCurrentMonth bool
	Focused        bool
}

// Cursor is the view state: the month being displayed and the focused day.
// Every method returns a new Cursor.
type Cursor struct {
	Reference time.Time
	Focus     time.Time
}

// NewCursor returns a cursor on the day of now
func NewCursor(now time.Time) Cursor {
	today := Day(now)
	return Cursor{Reference: today, Focus: today}
}

// View computes the month grid for the cursor's reference date
func (c Cursor) View() MonthView {
	return NewMonthView(c.Reference)
}

// NavigateMonth moves the displayed month by delta. The focus keeps its day of
// month, clamped to the new month.
func (c Cursor) NavigateMonth(delta int) Cursor {
	ref := AddMonths(c.Reference, delta)
	return Cursor{Reference: ref, Focus: dayInMonth(ref, c.Focus.Day())}
}

// JumpToToday shows the month of now and focuses today
func (c Cursor) JumpToToday(now time.Time) Cursor {
	today := Day(now)
	return Cursor{Reference: FirstOfMonth(today), Focus: today}
}

// MoveFocus moves the focus one day or week and follows it to its month
func (c Cursor) MoveFocus(dir Direction) Cursor {
	focus := Day(c.Focus).AddDate(0, 0, dir.Days())
	return Cursor{Reference: FirstOfMonth(focus), Focus: focus}
}

// FocusOn focuses the given day and shows its month
func (c Cursor) FocusOn(date time.Time) Cursor {
	focus := Day(date)
	return Cursor{Reference: FirstOfMonth(focus), Focus: focus}
}

// PickMonth shows the month given as YYYY-MM. An unparsable value leaves the
// cursor unchanged and reports false.
func (c Cursor) PickMonth(value string) (Cursor, bool) {
	month, err := time.Parse(MonthLayout, strings.TrimSpace(value))
	if err != nil {
		return c, false
	}
	ref := FirstOfMonth(month)
	return Cursor{Reference: ref, Focus: dayInMonth(ref, c.Focus.Day())}, true
}

// InMonth reports whether d belongs to the displayed month
func (c Cursor) InMonth(d time.Time) bool {
	return SameMonth(d, c.Reference)
}

// Cells builds the presentation tuple for every grid day
func (c Cursor) Cells(notes Notes) []Cell {
	days := c.View().Days()
	cells := make([]Cell, len(days))
	for i, d := range days {
		var note string
		if notes != nil {
			note = notes.Get(d)
		}
		cells[i] = Cell{
			Date:           d,
			Note:           note,
			InCurrentMonth: c.InMonth(d),
			Focused:        SameDay(d, c.Focus),
		}
	}
	return cells
}
