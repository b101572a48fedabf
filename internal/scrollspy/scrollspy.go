// Package scrollspy tracks which section of a continuous document is in view.
//
// Positions are measured in rendered lines from the top of the document.
package scrollspy

// Section is the line range occupied by one page in scroll mode.
type Section struct {
	Top    int
	Height int
}

// Contains reports whether line pos falls inside the section.
func (s Section) Contains(pos int) bool {
	return s.Top <= pos && pos < s.Top+s.Height
}

// Layout stacks sections of the given heights, separated by gap lines.
func Layout(heights []int, gap int) []Section {
	sections := make([]Section, len(heights))
	top := 0
	for i, h := range heights {
		sections[i] = Section{Top: top, Height: max(h, 0)}
		top += sections[i].Height + gap
	}
	return sections
}

// Active returns the index of the section containing yOffset+probe, or -1
// when the probe line falls in a gap or past the end.
func Active(sections []Section, yOffset, probe int) int {
	pos := yOffset + probe
	for i, s := range sections {
		if s.Contains(pos) {
			return i
		}
	}
	return -1
}

// HeaderScrolled reports whether the header should switch to its compact
// style.
func HeaderScrolled(yOffset, threshold int) bool {
	return yOffset > threshold
}

// Revealer remembers which sections have scrolled into view. A section
// stays revealed once its top has entered the reveal band.
type Revealer struct {
	revealed []bool
}

// NewRevealer tracks n sections, none revealed.
func NewRevealer(n int) *Revealer {
	return &Revealer{revealed: make([]bool, n)}
}

// Update reveals every section whose top lies above ratio of the viewport
// height and returns the indices revealed by this call.
func (r *Revealer) Update(sections []Section, yOffset, viewHeight int, ratio float64) []int {
	if len(r.revealed) < len(sections) {
		grown := make([]bool, len(sections))
		copy(grown, r.revealed)
		r.revealed = grown
	}

	band := float64(viewHeight) * ratio
	var newly []int
	for i, s := range sections {
		if r.revealed[i] {
			continue
		}
		if float64(s.Top-yOffset) < band {
			r.revealed[i] = true
			newly = append(newly, i)
		}
	}
	return newly
}

// Revealed reports whether section i has been revealed.
func (r *Revealer) Revealed(i int) bool {
	return i >= 0 && i < len(r.revealed) && r.revealed[i]
}

// Count returns how many sections are revealed.
func (r *Revealer) Count() int {
	n := 0
	for _, v := range r.revealed {
		if v {
			n++
		}
	}
	return n
}
