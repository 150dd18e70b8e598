package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/tempo/internal/model"
	"github.com/dori/tempo/internal/report"
)

// loadEntries fetches the entries for today's stored (UTC) date
func (m RootModel) loadEntries() tea.Cmd {
	database := m.app.DB
	return func() tea.Msg {
		entries, err := database.EntriesForDate(time.Now().UTC())
		return EntriesLoadedMsg{Entries: entries, Err: err}
	}
}

func (m RootModel) handleTodayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Continue):
		if m.cursor >= len(m.entries) {
			return m, nil
		}
		src := m.entries[m.cursor]
		if err := m.session.Continue(&src); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.status = m.session.Status()
		m.input.SetValue(src.Description)
		m.selectProject(src.ProjectID)
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Delete):
		if m.cursor >= len(m.entries) {
			return m, nil
		}
		entry := m.entries[m.cursor]
		if !m.session.Delete(entry.ID) {
			if m.session.Running() != nil && m.session.Running().ID == entry.ID {
				m.statusMsg = "cannot delete the running entry"
			}
			return m, nil
		}
		return m, m.refreshCmd()
	}

	return m, nil
}

// renderToday renders the today view: entry rows plus the day total
func (m RootModel) renderToday() string {
	now := time.Now()

	var b []string
	total := report.TotalDuration(m.entries, now)
	header := m.styles.DayHeader.Render(now.Format("Monday, January 2")) +
		"  " + m.styles.Total.Render(report.FormatDuration(total))
	b = append(b, header)

	if len(m.entries) == 0 {
		b = append(b, m.styles.Dim.Render("  No entries today"))
		return strings.Join(b, "\n")
	}

	for i, e := range m.entries {
		b = append(b, m.renderEntryRow(e, now, i == m.cursor))
	}
	return strings.Join(b, "\n")
}

// renderEntryRow renders one entry line with project dot, description,
// time range, and duration
func (m RootModel) renderEntryRow(e model.TimeEntry, now time.Time, selected bool) string {
	dot := " "
	if e.ProjectID != nil {
		if p := m.projectByID(*e.ProjectID); p != nil {
			dot = ColorDot(p.Color)
		}
	}

	description := e.Description
	if description == "" {
		description = "(no description)"
	}

	span := e.StartTime.Local().Format("15:04") + "-"
	if e.EndTime != nil {
		span += e.EndTime.Local().Format("15:04")
	} else {
		span += "now"
	}

	duration := report.FormatDuration(e.DurationAt(now))
	if e.IsRunning() {
		duration = m.styles.Running.Render(duration)
	}

	line := "  " + dot + " " + description + "  " +
		m.styles.Dim.Render(span) + "  " + duration
	if selected {
		return m.styles.Selected.Render(line)
	}
	return line
}

func (m *RootModel) projectByID(id int64) *model.Project {
	for i := range m.projects {
		if m.projects[i].ID == id {
			return &m.projects[i]
		}
	}
	return nil
}
