package shared

import (
	"strings"
	"testing"
)

var testSections = []HelpSection{
	{Title: "Calendar", Binds: []HelpBind{{Key: "h / l", Desc: "Previous / next day"}}},
	{Title: "Global", Binds: []HelpBind{{Key: "q", Desc: "Quit"}}},
}

func TestRenderHelpPopup(t *testing.T) {
	out := RenderHelpPopup(testSections, 80, 24)

	for _, want := range []string{"memocal", "Keyboard Shortcuts", "Calendar", "Previous / next day", "Global", "Quit", "Press any key to close"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected popup to contain %q", want)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != 24 {
		t.Errorf("expected popup placed in 24 lines, got %d", lines)
	}
}

func TestRenderHelpPopup_Columns(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		sideBySide bool
	}{
		{"wide terminal", 120, true},
		{"narrow terminal", 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderHelpPopup(testSections, tt.width, 30)

			together := false
			for _, line := range strings.Split(out, "\n") {
				if strings.Contains(line, "Calendar") && strings.Contains(line, "Global") {
					together = true
				}
			}
			if together != tt.sideBySide {
				t.Errorf("expected sections side by side = %v at width %d", tt.sideBySide, tt.width)
			}
		})
	}
}
