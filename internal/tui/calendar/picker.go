package calendar

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"memocal/internal/tui/theme"
)

// MonthPickerModel wraps bubbles/textinput for YYYY-MM entry
type MonthPickerModel struct {
	Input  textinput.Model
	Prompt string
}

// MonthPickedMsg is sent when the picker is confirmed or cancelled
type MonthPickedMsg struct {
	Value     string
	Cancelled bool
}

// NewMonthPicker creates a focused picker prefilled with value
func NewMonthPicker(value string) MonthPickerModel {
	ti := textinput.New()
	ti.Placeholder = "yyyy-MM"
	ti.CharLimit = 7
	ti.Width = 10
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	return MonthPickerModel{
		Input:  ti,
		Prompt: "Go to month",
	}
}

// Update handles keys for the picker
func (m MonthPickerModel) Update(msg tea.Msg) (MonthPickerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			value := m.Input.Value()
			return m, func() tea.Msg {
				return MonthPickedMsg{Value: value}
			}
		case "esc":
			return m, func() tea.Msg {
				return MonthPickedMsg{Cancelled: true}
			}
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// View renders the picker box
func (m MonthPickerModel) View() string {
	content := inputPromptStyle.Render(m.Prompt+": ") + m.Input.View() + "\n"
	content += lipgloss.NewStyle().Foreground(theme.TextMuted).Render("[enter] go  [esc] cancel")
	return inputBoxStyle.Render(content)
}
