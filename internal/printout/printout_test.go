package printout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"memocal/internal/calendar"
)

type mapNotes map[string]string

func (m mapNotes) Get(d time.Time) string { return m[calendar.DayKey(d)] }

func march2024() calendar.MonthView {
	return calendar.NewMonthView(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
}

func TestRender(t *testing.T) {
	notes := mapNotes{"2024-03-15": "# meeting\nroom 4", "2024-02-26": "lead"}

	sheet := Render(march2024(), notes, 100)

	if !strings.Contains(sheet, "March 2024") {
		t.Error("expected month title")
	}
	for _, wd := range calendar.Weekdays {
		if !strings.Contains(sheet, wd) {
			t.Errorf("expected weekday header %q", wd)
		}
	}
	if !strings.Contains(sheet, "meeting") {
		t.Error("expected note preview for Mar 15")
	}
	if strings.Contains(sheet, "room 4") {
		t.Error("expected only the first line of the note")
	}
	if !strings.Contains(sheet, "(26)") {
		t.Error("expected lead day from February in parentheses")
	}
	if !strings.Contains(sheet, "lead") {
		t.Error("expected note on lead day")
	}
	if strings.Contains(sheet, "\x1b[") {
		t.Error("expected plain text without escape sequences")
	}
}

func TestRender_TruncatesLongNotes(t *testing.T) {
	long := strings.Repeat("x", 200)
	sheet := Render(march2024(), mapNotes{"2024-03-15": long}, 60)

	if strings.Contains(sheet, long) {
		t.Error("expected long note to be truncated")
	}
	if !strings.Contains(sheet, "…") {
		t.Error("expected truncation marker")
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "print")

	path, err := WriteFile(dir, march2024(), mapNotes{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "2024-03.txt" {
		t.Errorf("expected 2024-03.txt, got %s", filepath.Base(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(content), "March 2024") {
		t.Error("expected sheet content in file")
	}
}
