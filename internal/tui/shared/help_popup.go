package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"memocal/internal/tui/theme"
)

// HelpBind is one key and what it does
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection groups the binds of one mode
type HelpSection struct {
	Title string
	Binds []HelpBind
}

const helpColumnGap = 4

var (
	helpTitleStyle   = theme.Title
	helpSectionStyle = theme.Subtitle.Underline(true)
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpColumnStyle  = lipgloss.NewStyle().PaddingRight(helpColumnGap)
	helpDismissStyle = theme.Muted
	helpBoxStyle     = theme.ModalBox.Padding(1, 2)
)

// RenderHelpPopup centers the shortcut sheet in a width x height area.
// Sections sit side by side while they fit and wrap onto new rows otherwise.
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	blocks := make([]string, len(sections))
	for i, section := range sections {
		blocks[i] = renderHelpSection(section)
	}

	header := helpTitleStyle.Render("memocal") + helpDismissStyle.Render(" · Keyboard Shortcuts")
	body := packColumns(blocks, width-helpBoxStyle.GetHorizontalFrameSize())
	footer := helpDismissStyle.Render("Press any key to close")

	box := helpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderHelpSection aligns descriptions on the widest key of the section
func renderHelpSection(section HelpSection) string {
	keyWidth := 0
	for _, bind := range section.Binds {
		keyWidth = max(keyWidth, lipgloss.Width(bind.Key))
	}

	lines := []string{helpSectionStyle.Render(section.Title)}
	for _, bind := range section.Binds {
		lines = append(lines, helpKeyStyle.Width(keyWidth+2).Render(bind.Key)+helpDescStyle.Render(bind.Desc))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// packColumns lays blocks out left to right, starting a new row when the
// next block would overflow width
func packColumns(blocks []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0

	for _, block := range blocks {
		w := lipgloss.Width(block) + helpColumnGap
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, helpColumnStyle.Render(block))
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return strings.Join(rows, "\n\n")
}
