package app

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/ui/headerbar"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	var body string
	if m.Mode == config.ModeScroll {
		body = m.Scroll.View()
	} else {
		body = m.Flip.View()
	}

	parts := make([]string, 0, 3)
	if !m.Fullscreen {
		parts = append(parts, m.renderHeader())
	}
	parts = append(parts, body)
	if !m.Fullscreen {
		parts = append(parts, m.renderFooter())
	}

	return zone.Scan(m.Popups.RenderOverlay(strings.Join(parts, "\n")))
}

func (m Model) renderHeader() string {
	sections := make([]string, len(m.Issue.Pages))
	for i, p := range m.Issue.Pages {
		sections[i] = p.Title
	}

	active := m.Nav.Current() - 1
	scrolled := false
	if m.Mode == config.ModeScroll {
		active = m.Scroll.ActiveSection()
		scrolled = m.Scroll.HeaderScrolled()
	}

	return m.Header.Render(headerbar.Props{
		Title:    m.Issue.Title,
		Sections: sections,
		Active:   active,
		Scrolled: scrolled,
		Status:   m.status(),
		Width:    m.Width,
	})
}

// status is the position summary shared by the compact header and footer.
func (m Model) status() string {
	total := m.Issue.Len()
	if m.Mode != config.ModeScroll {
		return fmt.Sprintf("page %d/%d", m.Nav.Current(), total)
	}
	section := "-"
	if a := m.Scroll.ActiveSection(); a >= 0 {
		section = fmt.Sprint(a + 1)
	}
	return fmt.Sprintf("section %s/%d · %.0f%%", section, total, m.Scroll.ScrollPercent()*100)
}

func (m Model) renderFooter() string {
	s := styles.T().S()

	left := " " + s.Muted.Render(m.Mode+" · "+m.status())

	var right string
	switch {
	case m.ErrorMsg != "":
		right = s.Error.Render(render.Truncate(m.ErrorMsg, max(m.Width/2, 10)))
	case m.Notice != "":
		right = s.Success.Render(render.Truncate(m.Notice, max(m.Width/2, 10)))
	default:
		right = s.Subtle.Render("? help")
	}
	return render.Row(left, right+" ", m.Width)
}
