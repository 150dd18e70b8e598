// Package report computes totals and per-project breakdowns over sets of
// time entries. Everything here is a pure function of its inputs; callers
// fetch entries from storage and pass the clock in explicitly.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/dori/tempo/internal/model"
)

// NoProjectName labels the group of entries with no project association
const NoProjectName = "No Project"

// noProjectColor is the neutral placeholder for the unassigned group
const noProjectColor = "#888888"

// ProjectLookup resolves a project id to its current name and color.
// Returning ok=false (deleted project) falls back to the unassigned group's
// labeling.
type ProjectLookup func(id int64) (name, color string, ok bool)

// ProjectSlice is one group in a per-project breakdown
type ProjectSlice struct {
	Name     string
	Color    string
	Duration time.Duration
}

// TotalDuration sums the durations of all entries as of now. Entries with
// no end time count up to now; negative spans contribute zero.
func TotalDuration(entries []model.TimeEntry, now time.Time) time.Duration {
	var total time.Duration
	for i := range entries {
		total += entries[i].DurationAt(now)
	}
	return total
}

// BreakdownByProject groups entries by project, sums time per group, and
// returns the groups sorted by descending duration. Ties keep the order in
// which the groups were first seen. Names and colors come from the lookup
// at aggregation time, so renamed projects relabel historical breakdowns.
func BreakdownByProject(entries []model.TimeEntry, lookup ProjectLookup, now time.Time) []ProjectSlice {
	type group struct {
		slice ProjectSlice
		order int
	}

	groups := make(map[int64]*group)
	const noProject = int64(-1)

	for i := range entries {
		e := &entries[i]
		key := noProject
		if e.ProjectID != nil {
			key = *e.ProjectID
		}

		g, seen := groups[key]
		if !seen {
			name, color := NoProjectName, noProjectColor
			if key != noProject {
				if n, c, ok := lookup(key); ok {
					name, color = n, c
				}
			}
			g = &group{slice: ProjectSlice{Name: name, Color: color}, order: len(groups)}
			groups[key] = g
		}
		g.slice.Duration += e.DurationAt(now)
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].slice.Duration != ordered[j].slice.Duration {
			return ordered[i].slice.Duration > ordered[j].slice.Duration
		}
		return ordered[i].order < ordered[j].order
	})

	slices := make([]ProjectSlice, len(ordered))
	for i, g := range ordered {
		slices[i] = g.slice
	}
	return slices
}

// GroupByDay partitions entries by the calendar date of their start time in
// the given location. Storage keeps UTC; which wall-clock day an entry lands
// on is the caller's concern, so the zone is explicit.
func GroupByDay(entries []model.TimeEntry, loc *time.Location) map[time.Time][]model.TimeEntry {
	days := make(map[time.Time][]model.TimeEntry)
	for _, e := range entries {
		local := e.StartTime.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		days[day] = append(days[day], e)
	}
	return days
}

// SortedDays returns the keys of a GroupByDay result, most recent first
func SortedDays(days map[time.Time][]model.TimeEntry) []time.Time {
	keys := make([]time.Time, 0, len(days))
	for d := range days {
		keys = append(keys, d)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].After(keys[j]) })
	return keys
}

// WeekRange returns the Monday and Sunday of the week containing today
func WeekRange(today time.Time) (monday, sunday time.Time) {
	daysSinceMonday := int(today.Weekday()-time.Monday+7) % 7
	monday = today.AddDate(0, 0, -daysSinceMonday)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// FormatDuration renders a duration as H:MM or M min for list display
func FormatDuration(d time.Duration) string {
	total := int64(d.Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d:%02d", hours, minutes)
}

// FormatClock renders a duration as HH:MM:SS
func FormatClock(d time.Duration) string {
	total := int64(d.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
