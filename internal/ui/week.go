package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/tempo/internal/report"
)

// loadWeek fetches all entries in the current Monday-to-Sunday window
func (m RootModel) loadWeek() tea.Cmd {
	database := m.app.DB
	return func() tea.Msg {
		monday, sunday := report.WeekRange(time.Now())
		entries, err := database.EntriesForRange(monday, sunday)
		return WeekLoadedMsg{Entries: entries, Start: monday, End: sunday, Err: err}
	}
}

// renderWeek renders the weekly summary: total, per-project breakdown with
// proportional bars, then entries grouped by local calendar day
func (m RootModel) renderWeek() string {
	now := time.Now()

	var b []string
	header := fmt.Sprintf("Week of %s - %s",
		m.weekStart.Format("Jan 2"), m.weekEnd.Format("Jan 2, 2006"))
	total := report.TotalDuration(m.weekEntries, now)
	b = append(b, m.styles.DayHeader.Render(header)+"  "+
		m.styles.Total.Render("Total: "+report.FormatDuration(total)))

	// Per-project breakdown, current names and colors
	lookup := func(id int64) (string, string, bool) {
		if p := m.projectByID(id); p != nil {
			return p.Name, p.Color, true
		}
		return "", "", false
	}
	slices := report.BreakdownByProject(m.weekEntries, lookup, now)
	if len(slices) > 0 {
		maxDur := slices[0].Duration
		for _, s := range slices {
			b = append(b, "  "+m.renderBreakdownRow(s, maxDur))
		}
	}

	if len(m.weekEntries) == 0 {
		b = append(b, m.styles.Dim.Render("  No entries this week"))
		return strings.Join(b, "\n")
	}

	// Day sections, most recent first
	days := report.GroupByDay(m.weekEntries, time.Local)
	for _, day := range report.SortedDays(days) {
		dayEntries := days[day]
		dayTotal := report.TotalDuration(dayEntries, now)
		b = append(b, "")
		b = append(b, m.styles.DayHeader.Render(day.Format("Monday, January 2"))+
			"  "+m.styles.Dim.Render(report.FormatDuration(dayTotal)))
		for _, e := range dayEntries {
			b = append(b, m.renderEntryRow(e, now, false))
		}
	}

	return strings.Join(b, "\n")
}

// renderBreakdownRow renders a project name, a bar scaled to the largest
// group, and the duration
func (m RootModel) renderBreakdownRow(s report.ProjectSlice, maxDur time.Duration) string {
	const barWidth = 20
	width := 1
	if maxDur > 0 {
		width = int(float64(s.Duration) / float64(maxDur) * barWidth)
		if width < 1 {
			width = 1
		}
	}
	bar := ColorDot(s.Color) + " " + strings.Repeat("█", width)
	return fmt.Sprintf("%-15s %s %s", s.Name, bar,
		m.styles.Dim.Render(report.FormatDuration(s.Duration)))
}
