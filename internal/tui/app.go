package tui

import (
	"time"

	"memocal/internal/calendar"
	"memocal/internal/config"
	"memocal/internal/logs"
	"memocal/internal/memo"
	"memocal/internal/printout"
	calendarview "memocal/internal/tui/calendar"
	"memocal/internal/tui/messages"
	"memocal/internal/tui/shared"
	"memocal/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model. It owns the note store snapshot and replaces
// it wholesale on every edit.
type AppModel struct {
	cfg       *config.Config
	slot      memo.Slot
	store     memo.Store
	monthView calendarview.MonthModel
	status    string
	statusErr bool
	showHelp  bool
	width     int
	height    int
	ready     bool
}

// NewAppModel creates the root application model. The store must already be
// loaded from slot.
func NewAppModel(cfg *config.Config, slot memo.Slot, store memo.Store, now func() time.Time) AppModel {
	return AppModel{
		cfg:       cfg,
		slot:      slot,
		store:     store,
		monthView: calendarview.NewMonthModel(store, now),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

// Store returns the current note snapshot
func (m AppModel) Store() memo.Store {
	return m.store
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.monthView.SetSize(msg.Width, contentHeight)
		return m, nil

	case messages.PrintRequestMsg:
		view := calendar.NewMonthView(msg.Reference)
		path, err := printout.WriteFile(m.cfg.PrintDir, view, m.store, m.width)
		if err != nil {
			logs.Logger.Printf("Error printing %s: %v", printout.FileName(view), err)
			m.status, m.statusErr = "Print failed: "+err.Error(), true
			return m, nil
		}
		logs.Logger.Printf("Printed %s", path)
		m.status, m.statusErr = "Printed to "+path, false
		return m, nil

	case messages.StatusMsg:
		m.status, m.statusErr = msg.Text, msg.Error
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		m.status = ""

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.monthView.IsInModalState() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.monthView, cmd = m.monthView.Update(msg)

	if edit, ok := m.monthView.TakeEdit(); ok {
		m.applyEdit(edit)
	}

	return m, cmd
}

// applyEdit writes the edited note through to storage and hands the new
// snapshot to the view. A failed write keeps the edit in memory.
func (m *AppModel) applyEdit(edit messages.NoteEdit) {
	store, err := m.store.Set(m.slot, edit.Date, edit.Text)
	if err != nil {
		logs.Logger.Printf("Error saving note for %s: %v", calendar.DayKey(edit.Date), err)
	}
	m.store = store
	m.monthView.SetStore(store)
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections(), m.width, m.height)
	}

	content := m.monthView.View()

	statusText := "?:help | p:print | /:search | q:quit"
	if hint := m.monthView.HintText(); hint != "" {
		statusText = hint
	}
	statusStyle := theme.HelpHint
	if m.status != "" {
		statusText = m.status
		if m.statusErr {
			statusStyle = theme.Error
		} else {
			statusStyle = theme.Ok
		}
	}

	statusBar := theme.StatusBar.Width(m.width).Render(statusStyle.Render(statusText))

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Calendar",
			Binds: []shared.HelpBind{
				{Key: "h / l", Desc: "Previous / next day"},
				{Key: "k / j", Desc: "Previous / next week"},
				{Key: "H / L, [ / ]", Desc: "Previous / next month"},
				{Key: "t", Desc: "Jump to today"},
				{Key: "m", Desc: "Go to month (yyyy-MM)"},
				{Key: "enter / e", Desc: "Edit note"},
				{Key: "/", Desc: "Search notes"},
				{Key: "y", Desc: "Copy note"},
				{Key: "p", Desc: "Print month"},
			},
		},
		{
			Title: "Editor",
			Binds: []shared.HelpBind{
				{Key: "typing", Desc: "Saves on every change"},
				{Key: "ctrl+arrows", Desc: "Move to another day"},
				{Key: "esc", Desc: "Back to calendar"},
			},
		},
		{
			Title: "Global",
			Binds: []shared.HelpBind{
				{Key: "?", Desc: "Show this help"},
				{Key: "q", Desc: "Quit"},
				{Key: "ctrl+c", Desc: "Force quit"},
			},
		},
	}
}
