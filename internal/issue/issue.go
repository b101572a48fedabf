// Package issue loads a Markdown publication and splits it into pages.
//
// Every level-1 or level-2 heading at the top level of the document starts a
// new page. Text before the first such heading becomes a cover page.
package issue

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// pageHeadingLevel is the deepest heading level that starts a page.
const pageHeadingLevel = 2

// CoverID is the page ID of the cover page.
const CoverID = "cover"

var (
	// ErrEmpty is returned for documents without any content.
	ErrEmpty = errors.New("issue has no content")

	errRead = errors.New("failed to read issue")
)

// Page is one page of an issue.
type Page struct {
	Number int    // 1-based position
	ID     string // heading anchor, used for #fragment links
	Title  string
	Body   string // Markdown source below the heading
}

// Issue is a loaded publication.
type Issue struct {
	Path  string
	Title string
	Pages []Page
}

// Load reads and parses the issue at path.
func Load(path string) (*Issue, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(err, errRead)
	}
	iss, err := Parse(fileTitle(path), src)
	if err != nil {
		return nil, err
	}
	iss.Path = path
	return iss, nil
}

// Parse splits Markdown source into pages. name titles the cover page and,
// when the document has no level-1 heading, the issue itself.
func Parse(name string, src []byte) (*Issue, error) {
	if strings.TrimSpace(string(src)) == "" {
		return nil, ErrEmpty
	}

	md := goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	doc := md.Parser().Parse(text.NewReader(src))

	type mark struct {
		start     int // first byte of the heading line
		bodyStart int // first byte after the heading
		id        string
		title     string
		level     int
	}
	var marks []mark
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > pageHeadingLevel {
			continue
		}
		lines := h.Lines()
		if lines.Len() == 0 {
			continue
		}
		start := lineStart(src, lines.At(0).Start)
		stop := lines.At(lines.Len() - 1).Stop
		if stop > 0 && src[stop-1] == '\n' {
			stop--
		}
		end := lineEnd(src, stop)
		if !isATX(src[start:]) {
			// setext: skip the underline
			end = lineEnd(src, end)
		}
		marks = append(marks, mark{
			start:     start,
			bodyStart: end,
			id:        headingID(h),
			title:     nodeText(h, src),
			level:     h.Level,
		})
	}

	iss := &Issue{Title: name}
	for _, m := range marks {
		if m.level == 1 {
			iss.Title = m.title
			break
		}
	}

	coverEnd := len(src)
	if len(marks) > 0 {
		coverEnd = marks[0].start
	}
	if cover := trimBlankLines(string(src[:coverEnd])); cover != "" {
		iss.Pages = append(iss.Pages, Page{ID: CoverID, Title: name, Body: cover})
	}

	for i, m := range marks {
		end := len(src)
		if i+1 < len(marks) {
			end = marks[i+1].start
		}
		iss.Pages = append(iss.Pages, Page{
			ID:    m.id,
			Title: m.title,
			Body:  trimBlankLines(string(src[m.bodyStart:end])),
		})
	}

	for i := range iss.Pages {
		iss.Pages[i].Number = i + 1
	}
	return iss, nil
}

// PageNumber returns the 1-based number of the page with the given ID.
func (i *Issue) PageNumber(id string) (int, bool) {
	id = strings.TrimPrefix(id, "#")
	if id == "" {
		return 0, false
	}
	for _, p := range i.Pages {
		if p.ID == id {
			return p.Number, true
		}
	}
	return 0, false
}

// Page returns the page with the given 1-based number.
func (i *Issue) Page(number int) (Page, bool) {
	if number < 1 || number > len(i.Pages) {
		return Page{}, false
	}
	return i.Pages[number-1], true
}

// Len returns the number of pages.
func (i *Issue) Len() int {
	return len(i.Pages)
}

// SplitFragment splits "path#page-id" into its path and fragment. An
// argument naming an existing file, or whose tail after # looks like a file
// name, is returned whole.
func SplitFragment(arg string) (path, fragment string) {
	idx := strings.LastIndexByte(arg, '#')
	if idx < 0 {
		return arg, ""
	}
	if _, err := os.Stat(arg); err == nil {
		return arg, ""
	}
	fragment = arg[idx+1:]
	// page IDs are slugs: anything that looks like a path stays in the name
	if strings.ContainsAny(fragment, `/\`) || filepath.Ext(fragment) != "" {
		return arg, ""
	}
	return arg[:idx], fragment
}

func fileTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return ""
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func isATX(line []byte) bool {
	trimmed := strings.TrimLeft(string(line), " ")
	return strings.HasPrefix(trimmed, "#")
}

func lineStart(src []byte, pos int) int {
	for pos > 0 && src[pos-1] != '\n' {
		pos--
	}
	return pos
}

func lineEnd(src []byte, pos int) int {
	for i := pos; i < len(src); i++ {
		if src[i] == '\n' {
			return i + 1
		}
	}
	return len(src)
}

func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
