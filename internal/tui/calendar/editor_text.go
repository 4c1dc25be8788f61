package calendar

import (
	"unicode"
	"unicode/utf8"
)

// editorTab is what the textarea inserts in place of a tab
const editorTab = "    "

// editorForm returns how the textarea holds c after loading it
func editorForm(c rune) []rune {
	switch {
	case c == utf8.RuneError:
		return nil
	case c == '\r' || c == '\n':
		return []rune{'\n'}
	case c == '\t':
		return []rune(editorTab)
	case unicode.IsControl(c):
		return nil
	}
	return []rune{c}
}

// alignRunes maps every rune of raw to its offset in base, the editor's copy
// of raw. pos[len(raw)] is len(base). ok is false when base is not the
// editor form of raw.
func alignRunes(raw, base []rune) (pos []int, ok bool) {
	pos = make([]int, len(raw)+1)
	k := 0
	for i, c := range raw {
		pos[i] = k
		for _, f := range editorForm(c) {
			if k >= len(base) || base[k] != f {
				return nil, false
			}
			k++
		}
	}
	pos[len(raw)] = k
	return pos, k == len(base)
}

// mergeEdit applies the change from base to edited onto raw. Text the user
// did not touch keeps its stored form, so tabs and carriage returns outside
// the edited span survive a round trip through the editor.
func mergeEdit(raw, base, edited string) string {
	if raw == base {
		return edited
	}

	r, b, e := []rune(raw), []rune(base), []rune(edited)
	pos, ok := alignRunes(r, b)
	if !ok {
		return edited
	}

	// changed span: b[p:len(b)-q] became e[p:len(e)-q]
	p := 0
	for p < len(b) && p < len(e) && b[p] == e[p] {
		p++
	}
	q := 0
	for q < len(b)-p && q < len(e)-p && b[len(b)-1-q] == e[len(e)-1-q] {
		q++
	}

	// widen to whole raw runes so a half-edited tab is taken from edited
	i := 0
	for i < len(r) && pos[i+1] <= p {
		i++
	}
	j := len(r)
	for j > i && pos[j-1] >= len(b)-q {
		j--
	}

	start := pos[i]
	end := len(e) - (len(b) - pos[j])
	return string(r[:i]) + string(e[start:end]) + string(r[j:])
}
