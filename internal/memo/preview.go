package memo

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Preview returns the first line of readable text in a note, with markdown
// markup stripped. Notes are free text, so anything goldmark does not turn
// into a paragraph or heading falls back to the first non-blank raw line.
func Preview(note string) string {
	if strings.TrimSpace(note) == "" {
		return ""
	}

	source := []byte(note)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var line strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindParagraph, ast.KindHeading, ast.KindTextBlock:
			firstLine(n, source, &line)
			if strings.TrimSpace(line.String()) != "" {
				return ast.WalkStop, nil
			}
			line.Reset()
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if preview := strings.TrimSpace(line.String()); preview != "" {
		return preview
	}

	for _, raw := range strings.Split(note, "\n") {
		if raw = strings.TrimSpace(raw); raw != "" {
			return raw
		}
	}
	return ""
}

// firstLine appends the inline text of block that lies on its first source line
func firstLine(block ast.Node, source []byte, sb *strings.Builder) {
	lines := block.Lines()
	if lines.Len() == 0 {
		return
	}
	first := lines.At(0)

	ast.Walk(block, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			if node.Segment.Start >= first.Stop {
				return ast.WalkStop, nil
			}
			sb.Write(node.Segment.Value(source))
		case *ast.String:
			sb.Write(node.Value)
		case *ast.AutoLink:
			sb.Write(node.Label(source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
}
