package app

import (
	"time"

	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/issue"
	"github.com/llehouerou/folio/internal/state"
)

// saveReading records number as the last page read. The state manager
// debounces writes, so rapid page changes replace each other.
func saveReading(st state.Interface, iss *issue.Issue, number int) {
	p, ok := iss.Page(number)
	if !ok {
		return
	}
	st.SaveReading(state.Reading{
		IssuePath:  iss.Path,
		PageID:     p.ID,
		PageNumber: p.Number,
		UpdatedAt:  time.Now(),
	})
}

// currentPage returns the 1-based page the reader is on in either mode.
func (m *Model) currentPage() int {
	if m.Mode == config.ModeScroll {
		if s := m.Scroll.ActiveSection(); s >= 0 {
			return s + 1
		}
	}
	return m.Nav.Current()
}

// target returns the attach target for the current page.
func (m *Model) target() (attachTarget, bool) {
	n := m.currentPage()
	p, ok := m.Issue.Page(n)
	if !ok {
		return attachTarget{}, false
	}
	return attachTarget{IssuePath: m.Issue.Path, PageID: p.ID, PageIndex: n - 1}, true
}
