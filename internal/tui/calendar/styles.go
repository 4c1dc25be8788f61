package calendar

import (
	"github.com/charmbracelet/lipgloss"
	"memocal/internal/tui/theme"
)

// -- month.go styles --
var (
	monthTitleStyle   = theme.Title
	navHintStyle      = theme.HelpHint
	weekdayStyle      = lipgloss.NewStyle().Bold(true).Foreground(theme.TextMuted).Align(lipgloss.Center)
	cellStyle         = lipgloss.NewStyle().Padding(0, 1)
	cellOtherStyle    = cellStyle.Foreground(theme.TextMuted)
	cellNoteStyle     = cellStyle.Foreground(theme.Warning)
	cellFocusStyle    = cellStyle.Bold(true).Foreground(theme.TextBright).Background(theme.Primary)
	dayTodayStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Success)
	detailHeaderStyle = theme.Subtitle
	emptyStyle        = lipgloss.NewStyle().Foreground(theme.TextMuted).Italic(true)
)

// -- picker.go styles --
var (
	inputPromptStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	inputBoxStyle    = theme.ModalBox
)

// -- search.go styles --
var (
	searchLabelStyle    = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	resultDateStyle     = lipgloss.NewStyle().Foreground(theme.Secondary)
	resultCursorStyle   = theme.Cursor
	resultSelectedStyle = theme.SelectedBg
)
