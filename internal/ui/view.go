package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTimer())

	var content string
	switch m.currentView {
	case ViewWeek:
		content = m.renderWeek()
	case ViewProjects:
		content = m.renderProjects()
	default:
		content = m.renderToday()
	}

	// Reserve: header + timer block (4 lines) + footer (2 lines)
	contentHeight := m.height - 8
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the title bar with the view indicator
func (m RootModel) renderHeader() string {
	title := m.styles.Header.Render("tempo")
	viewIndicator := m.styles.Dim.Render(fmt.Sprintf(" [%s]", m.currentView.String()))

	left := title + viewIndicator
	right := ""
	if m.status.Running {
		right = m.styles.Running.Render("● recording")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderTimer renders the elapsed clock, description input, and project
// selection
func (m RootModel) renderTimer() string {
	clock := m.styles.Timer.Render(m.status.Elapsed)
	if m.status.Running {
		clock = m.styles.Running.Render(m.status.Elapsed)
	}

	project := "No Project"
	if id := m.selectedProjectID(); id != nil {
		if p := m.projectByID(*id); p != nil {
			project = ColorDot(p.Color) + " " + p.Name
		}
	}

	var description string
	if m.status.Running {
		description = m.status.Description
		if description == "" {
			description = m.styles.Dim.Render("(no description)")
		}
	} else {
		description = m.input.View()
	}

	return "  " + clock + "\n  " + description + "\n  " + m.styles.Dim.Render(project) + "\n"
}

// renderFooter renders the status line and key hints
func (m RootModel) renderFooter() string {
	var statusLine string
	if m.errorMsg != "" {
		statusLine = m.styles.Error.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = m.styles.Info.Render(m.statusMsg)
	}

	return statusLine + "\n" + m.help.View(m.keys)
}
