package printout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"memocal/internal/calendar"
	"memocal/internal/memo"
)

// DefaultWidth is the sheet width used when the caller has no terminal width
const DefaultWidth = 100

const (
	minCellWidth = 6
	cellHeight   = 3
)

// Render lays out the month of view as a plain-text sheet: a title line and
// a bordered Monday-first grid where each cell holds the day number and the
// note preview. Days outside the month show their number in parentheses.
func Render(view calendar.MonthView, notes calendar.Notes, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	// 8 vertical border characters for 7 columns
	cellWidth := max(minCellWidth, (width-8)/7)
	cellStyle := lipgloss.NewStyle().Width(cellWidth).Height(cellHeight)
	headerStyle := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(calendar.Weekdays...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for row := 0; row < view.Rows; row++ {
		cells := make([]string, 0, 7)
		for _, d := range view.Week(row) {
			cells = append(cells, renderCell(d, view.Reference, notes, cellWidth))
		}
		t.Row(cells...)
	}

	sheet := t.Render()
	title := lipgloss.PlaceHorizontal(lipgloss.Width(sheet), lipgloss.Center, view.Reference.Format("January 2006"))
	return title + "\n" + sheet + "\n"
}

func renderCell(d, reference time.Time, notes calendar.Notes, width int) string {
	num := fmt.Sprintf("%d", d.Day())
	if !calendar.SameMonth(d, reference) {
		num = "(" + num + ")"
	}

	var note string
	if notes != nil {
		note = memo.Preview(notes.Get(d))
	}
	if note == "" {
		return num
	}
	return num + "\n" + ansi.Truncate(note, width, "…")
}

// FileName returns the sheet file name for the month of view
func FileName(view calendar.MonthView) string {
	return view.Reference.Format(calendar.MonthLayout) + ".txt"
}

// WriteFile renders the sheet into dir and returns the written path
func WriteFile(dir string, view calendar.MonthView, notes calendar.Notes, width int) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create print dir: %w", err)
	}

	path := filepath.Join(dir, FileName(view))
	sheet := strings.TrimRight(Render(view, notes, width), " \n") + "\n"
	if err := os.WriteFile(path, []byte(sheet), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
