package calendar

import "testing"

func TestMergeEdit(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		base     string
		edited   string
		expected string
	}{
		{"plain text", "abc", "abc", "abcd", "abcd"},
		{"append after tab", "a\tb", "a    b", "a    b!", "a\tb!"},
		{"prepend before tab", "x\ty", "x    y", "!x    y", "!x\ty"},
		{"edit between tabs", "\ta\tb", "    a    b", "    aZ    b", "\taZ\tb"},
		{"delete inside tab", "a\tb", "a    b", "a   b", "a   b"},
		{"carriage return kept", "one\r\ntwo", "one\n\ntwo", "one\n\ntwo!", "one\r\ntwo!"},
		{"dropped control char kept", "a\x07b", "ab", "abc", "a\x07bc"},
		{"clear everything", "a\tb", "a    b", "", ""},
		{"base not from raw", "a\tb", "something else", "something else!", "something else!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergeEdit(tt.raw, tt.base, tt.edited); got != tt.expected {
				t.Errorf("mergeEdit(%q, %q, %q): expected %q, got %q", tt.raw, tt.base, tt.edited, tt.expected, got)
			}
		})
	}
}
