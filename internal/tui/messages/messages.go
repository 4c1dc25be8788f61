package messages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoteEdit is a single edit of a day's note made in the editor
type NoteEdit struct {
	Date time.Time
	Text string
}

// PrintRequestMsg asks the app to print the month containing Reference
type PrintRequestMsg struct {
	Reference time.Time
}

// StatusMsg shows a one-line message in the status bar until the next key
type StatusMsg struct {
	Text  string
	Error bool
}

// Status returns a command that emits a StatusMsg
func Status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text, Error: isErr}
	}
}
