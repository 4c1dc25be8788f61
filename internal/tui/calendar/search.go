package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"
	calendarpkg "memocal/internal/calendar"
	"memocal/internal/memo"
)

type searchResult struct {
	Date time.Time
	Text string
}

// SearchModel fuzzy-filters every stored note
type SearchModel struct {
	input   textinput.Model
	all     []searchResult
	results []searchResult
	cursor  int
}

// NewSearchModel indexes the non-empty notes of store
func NewSearchModel(store memo.Store) SearchModel {
	si := textinput.New()
	si.Placeholder = "Search notes..."
	si.CharLimit = 100
	si.Width = 40
	si.Focus()

	var all []searchResult
	for _, e := range store.NonEmpty() {
		d, err := calendarpkg.ParseDayKey(e.Key)
		if err != nil {
			continue
		}
		all = append(all, searchResult{Date: d, Text: e.Text})
	}

	s := SearchModel{input: si, all: all}
	s.applyFilter()
	return s
}

// searchString is the haystack for a note: its key followed by its text on one line
func searchString(r searchResult) string {
	return calendarpkg.DayKey(r.Date) + " " + strings.Join(strings.Fields(r.Text), " ")
}

func (s *SearchModel) applyFilter() {
	query := strings.TrimSpace(s.input.Value())
	if query == "" {
		s.results = s.all
	} else {
		haystack := make([]string, len(s.all))
		for i, r := range s.all {
			haystack[i] = searchString(r)
		}
		matches := fuzzy.Find(query, haystack)
		s.results = make([]searchResult, len(matches))
		for i, match := range matches {
			s.results[i] = s.all[match.Index]
		}
	}

	// Clamp cursor
	if s.cursor >= len(s.results) {
		s.cursor = max(0, len(s.results)-1)
	}
}

// Selected returns the date of the highlighted result
func (s SearchModel) Selected() (time.Time, bool) {
	if s.cursor < len(s.results) {
		return s.results[s.cursor].Date, true
	}
	return time.Time{}, false
}

// Update moves the selection or edits the query
func (s SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "down", "ctrl+n":
			if s.cursor < len(s.results)-1 {
				s.cursor++
			}
			return s, nil
		case "up", "ctrl+p":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.applyFilter()
	return s, cmd
}

// View renders the query line and up to limit results around the selection
func (s SearchModel) View(width, limit int) string {
	var sb strings.Builder

	sb.WriteString(searchLabelStyle.Render(" / ") + s.input.View())
	sb.WriteString("  " + navHintStyle.Render(fmt.Sprintf("(%d/%d)", len(s.results), len(s.all))))
	sb.WriteString("\n")

	if len(s.results) == 0 {
		sb.WriteString("   " + emptyStyle.Render("No matching notes"))
		return sb.String()
	}

	limit = max(1, limit)
	start := 0
	if s.cursor >= limit {
		start = s.cursor - limit + 1
	}
	end := min(len(s.results), start+limit)

	for i := start; i < end; i++ {
		r := s.results[i]
		prefix := "   "
		if i == s.cursor {
			prefix = resultCursorStyle.Render(" > ")
		}
		text := ansi.Truncate(memo.Preview(r.Text), max(10, width-16), "…")
		line := resultDateStyle.Render(calendarpkg.DayKey(r.Date)) + "  " + text
		if i == s.cursor {
			line = resultSelectedStyle.Render(line)
		}
		sb.WriteString(prefix + line)
		if i < end-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
