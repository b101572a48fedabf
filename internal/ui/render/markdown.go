package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/llehouerou/folio/internal/ui/styles"
)

var md = goldmark.New()

// Markdown renders a Markdown fragment as styled lines no wider than width.
// Blocks are separated by a single blank line.
func Markdown(src string, width int) []string {
	width = max(width, 1)
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var blocks [][]string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if lines := renderBlock(n, source, width); len(lines) > 0 {
			blocks = append(blocks, lines)
		}
	}

	var out []string
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, b...)
	}
	return out
}

// Wrap word-wraps s to width, breaking words longer than a line.
func Wrap(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	wrapped := wrap.String(wordwrap.String(s, width), width)
	return strings.Split(wrapped, "\n")
}

func renderBlock(n ast.Node, src []byte, width int) []string {
	s := styles.T().S()

	switch b := n.(type) {
	case *ast.Heading:
		return styleLines(Wrap(inline(b, src), width), s.Heading)

	case *ast.Paragraph, *ast.TextBlock:
		return Wrap(inline(b, src), width)

	case *ast.ThematicBreak:
		return []string{s.Subtle.Render(Separator(width))}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var lines []string
		segs := b.Lines()
		for i := range segs.Len() {
			seg := segs.At(i)
			line := strings.TrimRight(string(seg.Value(src)), "\n")
			lines = append(lines, s.Code.Render(Truncate(strings.ReplaceAll(line, "\t", "    "), width)))
		}
		return lines

	case *ast.Blockquote:
		var inner []string
		for c := b.FirstChild(); c != nil; c = c.NextSibling() {
			if len(inner) > 0 {
				inner = append(inner, "")
			}
			inner = append(inner, renderBlock(c, src, max(width-2, 1))...)
		}
		bar := s.Subtle.Render("│ ")
		for i, line := range inner {
			inner[i] = bar + s.Quote.Render(line)
		}
		return inner

	case *ast.List:
		return renderList(b, src, width)

	case *ast.HTMLBlock:
		var lines []string
		segs := b.Lines()
		for i := range segs.Len() {
			seg := segs.At(i)
			line := strings.TrimRight(string(seg.Value(src)), "\n")
			lines = append(lines, s.Subtle.Render(Truncate(line, width)))
		}
		return lines
	}

	// Unknown blocks: render their children.
	var lines []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		lines = append(lines, renderBlock(c, src, width)...)
	}
	return lines
}

func renderList(l *ast.List, src []byte, width int) []string {
	var lines []string
	number := l.Start
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if l.IsOrdered() {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		indent := strings.Repeat(" ", lipgloss.Width(marker))
		inner := max(width-len(indent), 1)

		first := true
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			for _, line := range renderBlock(c, src, inner) {
				if first {
					lines = append(lines, marker+line)
					first = false
					continue
				}
				lines = append(lines, indent+line)
			}
		}
		if first {
			lines = append(lines, strings.TrimRight(marker, " "))
		}
	}
	return lines
}

func inline(n ast.Node, src []byte) string {
	s := styles.T().S()

	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.WriteString(Sanitize(string(t.Segment.Value(src))))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
			if t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.WriteString(string(t.Value))
		case *ast.CodeSpan:
			b.WriteString(s.Code.Render(inline(t, src)))
		case *ast.Emphasis:
			style := lipgloss.NewStyle().Italic(true)
			if t.Level >= 2 {
				style = lipgloss.NewStyle().Bold(true)
			}
			b.WriteString(style.Render(inline(t, src)))
		case *ast.Link:
			label := inline(t, src)
			b.WriteString(s.Link.Render(label))
			if dest := string(t.Destination); dest != "" && dest != label {
				b.WriteString(s.Muted.Render(" (" + dest + ")"))
			}
		case *ast.AutoLink:
			b.WriteString(s.Link.Render(string(t.URL(src))))
		case *ast.Image:
			b.WriteString(s.Muted.Render("[image: " + inline(t, src) + "]"))
		case *ast.RawHTML:
			// dropped
		default:
			b.WriteString(inline(c, src))
		}
	}
	return b.String()
}

func styleLines(lines []string, style lipgloss.Style) []string {
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return lines
}
