package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	calendarpkg "memocal/internal/calendar"
	"memocal/internal/logs"
	"memocal/internal/memo"
	"memocal/internal/tui/messages"
)

type mode int

const (
	modeCalendar mode = iota
	modeEdit
	modePicker
	modeSearch
)

const (
	panelHeight   = 8
	minCellWidth  = 6
	maxCellHeight = 4
)

// MonthModel is the month grid with a note panel for the focused day
type MonthModel struct {
	cursor  calendarpkg.Cursor
	store   memo.Store
	now     func() time.Time
	mode    mode
	editor  textarea.Model
	picker  MonthPickerModel
	search  SearchModel
	pending *messages.NoteEdit
	width   int
	height  int

	// stored text of the note being edited and the editor's copy of it
	editRaw  string
	editBase string
}

// NewMonthModel creates the month view focused on today
func NewMonthModel(store memo.Store, now func() time.Time) MonthModel {
	if now == nil {
		now = time.Now
	}

	ed := textarea.New()
	ed.Placeholder = "Write a note..."
	ed.ShowLineNumbers = false
	ed.CharLimit = 0
	ed.SetHeight(panelHeight - 2)

	return MonthModel{
		cursor: calendarpkg.NewCursor(now()),
		store:  store,
		now:    now,
		editor: ed,
	}
}

// SetSize updates the view dimensions
func (m *MonthModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.editor.SetWidth(max(10, width-2))
}

// SetStore replaces the note snapshot the view renders from
func (m *MonthModel) SetStore(store memo.Store) {
	m.store = store
}

// Cursor returns the displayed month and focused day
func (m MonthModel) Cursor() calendarpkg.Cursor {
	return m.cursor
}

// IsInModalState reports whether keys should go to an input instead of global bindings
func (m MonthModel) IsInModalState() bool {
	return m.mode != modeCalendar
}

// IsEditing reports whether the note editor is open
func (m MonthModel) IsEditing() bool {
	return m.mode == modeEdit
}

// TakeEdit returns the edit made by the last Update, if any, and clears it
func (m *MonthModel) TakeEdit() (messages.NoteEdit, bool) {
	if m.pending == nil {
		return messages.NoteEdit{}, false
	}
	edit := *m.pending
	m.pending = nil
	return edit, true
}

// HintText returns hint text for the current state
func (m MonthModel) HintText() string {
	switch m.mode {
	case modeEdit:
		return "typing saves  ctrl+arrows:move day  esc:done"
	case modePicker:
		return "yyyy-MM  enter:go  esc:cancel"
	case modeSearch:
		return "type to filter  up/down:select  enter:go to day  esc:exit"
	}
	return ""
}

// Update handles key events for the month view
func (m MonthModel) Update(msg tea.Msg) (MonthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case MonthPickedMsg:
		m.mode = modeCalendar
		if msg.Cancelled {
			return m, nil
		}
		if c, ok := m.cursor.PickMonth(msg.Value); ok {
			m.cursor = c
		} else {
			logs.Logger.Printf("Ignoring invalid month %q", msg.Value)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEditor(msg)
		case modePicker:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		case modeSearch:
			return m.updateSearch(msg)
		}
		return m.updateCalendar(msg)
	}

	// Forward blink and other internal messages to the active input
	var cmd tea.Cmd
	switch m.mode {
	case modeEdit:
		m.editor, cmd = m.editor.Update(msg)
	case modePicker:
		m.picker, cmd = m.picker.Update(msg)
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m MonthModel) updateCalendar(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch msg.String() {
	case "h", "left", "ctrl+left":
		m.cursor = m.cursor.MoveFocus(calendarpkg.PrevDay)
	case "l", "right", "ctrl+right":
		m.cursor = m.cursor.MoveFocus(calendarpkg.NextDay)
	case "k", "up", "ctrl+up":
		m.cursor = m.cursor.MoveFocus(calendarpkg.PrevWeek)
	case "j", "down", "ctrl+down":
		m.cursor = m.cursor.MoveFocus(calendarpkg.NextWeek)
	case "H", "[":
		m.cursor = m.cursor.NavigateMonth(-1)
	case "L", "]":
		m.cursor = m.cursor.NavigateMonth(1)
	case "t", "T":
		m.cursor = m.cursor.JumpToToday(m.now())
	case "m":
		m.mode = modePicker
		m.picker = NewMonthPicker(m.cursor.Reference.Format(calendarpkg.MonthLayout))
		return m, textinput.Blink
	case "enter", "e", "i":
		return m.startEditing()
	case "/":
		m.mode = modeSearch
		m.search = NewSearchModel(m.store)
		return m, textinput.Blink
	case "p":
		ref := m.cursor.Reference
		return m, func() tea.Msg {
			return messages.PrintRequestMsg{Reference: ref}
		}
	case "y":
		return m, copyNote(m.cursor.Focus, m.store.Get(m.cursor.Focus))
	}
	return m, nil
}

func (m MonthModel) startEditing() (MonthModel, tea.Cmd) {
	m.mode = modeEdit
	m.loadEditor(m.store.Get(m.cursor.Focus))
	return m, m.editor.Focus()
}

func (m MonthModel) updateEditor(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Blur()
		m.mode = modeCalendar
		return m, nil
	case "ctrl+left":
		return m.moveWhileEditing(calendarpkg.PrevDay), nil
	case "ctrl+right":
		return m.moveWhileEditing(calendarpkg.NextDay), nil
	case "ctrl+up":
		return m.moveWhileEditing(calendarpkg.PrevWeek), nil
	case "ctrl+down":
		return m.moveWhileEditing(calendarpkg.NextWeek), nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != m.editBase {
		text := mergeEdit(m.editRaw, m.editBase, after)
		m.pending = &messages.NoteEdit{Date: m.cursor.Focus, Text: text}
		m.editRaw, m.editBase = text, after
	}
	return m, cmd
}

// loadEditor fills the editor with note. The textarea rewrites some
// characters on load, so the stored text is kept alongside its copy.
func (m *MonthModel) loadEditor(note string) {
	m.editor.SetValue(note)
	m.editRaw = note
	m.editBase = m.editor.Value()
}

func (m MonthModel) moveWhileEditing(dir calendarpkg.Direction) MonthModel {
	m.cursor = m.cursor.MoveFocus(dir)
	m.loadEditor(m.store.Get(m.cursor.Focus))
	return m
}

func (m MonthModel) updateSearch(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeCalendar
		return m, nil
	case "enter":
		if d, ok := m.search.Selected(); ok {
			m.cursor = m.cursor.FocusOn(d)
		}
		m.mode = modeCalendar
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func copyNote(date time.Time, note string) tea.Cmd {
	key := calendarpkg.DayKey(date)
	if note == "" {
		return messages.Status("No note to copy for "+key, false)
	}
	return func() tea.Msg {
		if err := clipboard.WriteAll(note); err != nil {
			logs.Logger.Printf("Error copying note for %s: %v", key, err)
			return messages.StatusMsg{Text: "Could not copy note: " + err.Error(), Error: true}
		}
		return messages.StatusMsg{Text: "Copied note for " + key}
	}
}

// View renders the month view
func (m MonthModel) View() string {
	var sb strings.Builder

	// Title line
	title := monthTitleStyle.Render(" " + m.cursor.Reference.Format("January 2006"))
	nav := navHintStyle.Render("[h/l: day] [k/j: week] [H/L: month] [t: today] [m: month] [enter: edit]")

	titleLine := title
	padding := m.width - lipgloss.Width(title) - lipgloss.Width(nav) - 1
	if padding > 0 {
		titleLine += strings.Repeat(" ", padding) + nav
	}
	sb.WriteString(titleLine)
	sb.WriteString("\n\n")

	sb.WriteString(m.renderGrid())
	sb.WriteString("\n")

	sb.WriteString(m.renderPanel())

	return sb.String()
}

func (m MonthModel) cellSize(rows int) (int, int) {
	width := max(minCellWidth, m.width/7)
	// title, blank line, weekday header, gap before panel
	available := m.height - 4 - panelHeight
	height := 1
	if rows > 0 && available > rows {
		height = min(maxCellHeight, available/rows)
	}
	return width, height
}

func (m MonthModel) renderGrid() string {
	view := m.cursor.View()
	cellWidth, cellHeight := m.cellSize(view.Rows)

	headers := make([]string, len(calendarpkg.Weekdays))
	for i, wd := range calendarpkg.Weekdays {
		headers[i] = weekdayStyle.Width(cellWidth).Render(wd)
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, headers...)}

	cells := m.cursor.Cells(m.store)
	today := m.now()
	for r := 0; r < view.Rows; r++ {
		week := make([]string, 0, 7)
		for _, cell := range cells[r*7 : r*7+7] {
			week = append(week, renderCell(cell, today, cellWidth, cellHeight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(cell calendarpkg.Cell, today time.Time, width, height int) string {
	inner := max(1, width-2)
	preview := memo.Preview(cell.Note)

	num := fmt.Sprintf("%2d", cell.Date.Day())
	if height == 1 && preview != "" {
		num += "•"
	}
	if calendarpkg.SameDay(cell.Date, today) && !cell.Focused {
		num = dayTodayStyle.Render(num)
	}

	lines := []string{num}
	if height > 1 && preview != "" {
		lines = append(lines, ansi.Truncate(preview, inner, "…"))
	}

	style := cellStyle
	switch {
	case cell.Focused:
		style = cellFocusStyle
	case !cell.InCurrentMonth:
		style = cellOtherStyle
	case cell.Note != "":
		style = cellNoteStyle
	}

	return style.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func (m MonthModel) renderPanel() string {
	focus := m.cursor.Focus
	header := detailHeaderStyle.Render(" " + focus.Format("Mon, Jan 2 2006"))

	switch m.mode {
	case modeEdit:
		return header + "  " + navHintStyle.Render("[editing]") + "\n" + m.editor.View()
	case modePicker:
		return m.picker.View()
	case modeSearch:
		return m.search.View(m.width, panelHeight-2)
	}

	note := m.store.Get(focus)
	if note == "" {
		return header + "  " + emptyStyle.Render("No note") + "\n"
	}

	lines := strings.Split(note, "\n")
	if len(lines) > panelHeight-1 {
		lines = append(lines[:panelHeight-2], "…")
	}

	var sb strings.Builder
	sb.WriteString(header + "\n")
	for _, line := range lines {
		sb.WriteString("  ")
		sb.WriteString(ansi.Truncate(line, max(10, m.width-4), "…"))
		sb.WriteString("\n")
	}
	return sb.String()
}
