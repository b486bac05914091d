package tasks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/tasks/filter"
	"tasktrack/internal/tui/theme"
)

var (
	modeStyle    = theme.NavActive
	hintStyle    = theme.HelpHint
	filterStyle  = lipgloss.NewStyle().Foreground(theme.Warning)
	searchStyle  = lipgloss.NewStyle().Foreground(theme.Success)
	infoBarStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(theme.Border)
)

// InfoBarModel displays mode, counts and active filters
type InfoBarModel struct {
	Mode        Mode
	SearchQuery string
	FilterDate  filter.Date
	Visible     int
	Total       int
	Completed   int
	Width       int
}

// NewInfoBar creates a new info bar
func NewInfoBar() InfoBarModel {
	return InfoBarModel{
		Width: 80,
	}
}

// View renders the info bar (2 fixed lines)
func (m *InfoBarModel) View() string {
	lines := []string{m.renderModeLine(), m.renderFiltersLine()}
	return infoBarStyle.Width(m.Width).Render(strings.Join(lines, "\n"))
}

func (m *InfoBarModel) renderModeLine() string {
	counts := fmt.Sprintf("%d of %d shown, %d done", m.Visible, m.Total, m.Completed)
	return modeStyle.Render("["+m.Mode.String()+"]") + "  " + hintStyle.Render(counts)
}

func (m *InfoBarModel) renderFiltersLine() string {
	var parts []string

	if m.SearchQuery != "" {
		parts = append(parts, searchStyle.Render("Search: \""+m.SearchQuery+"\""))
	}

	if !m.FilterDate.IsZero() {
		parts = append(parts, filterStyle.Render("Date: "+m.FilterDate.String()))
	}

	if len(parts) == 0 {
		return hintStyle.Render("No filters")
	}

	return strings.Join(parts, "  |  ")
}
