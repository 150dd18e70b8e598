package report

import (
	"testing"
	"time"

	"github.com/dori/tempo/internal/model"
)

func ptr(id int64) *int64 { return &id }

func entry(projectID *int64, start time.Time, dur time.Duration) model.TimeEntry {
	end := start.Add(dur)
	return model.TimeEntry{ProjectID: projectID, StartTime: start, EndTime: &end}
}

func TestTotalDuration(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	entries := []model.TimeEntry{
		entry(nil, now.Add(-3*time.Hour), time.Hour),
		entry(nil, now.Add(-90*time.Minute), 30*time.Minute),
	}

	if got := TotalDuration(entries, now); got != 90*time.Minute {
		t.Errorf("TotalDuration = %v, want 90m", got)
	}
}

func TestTotalDurationIncludesRunning(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	entries := []model.TimeEntry{
		entry(nil, now.Add(-2*time.Hour), time.Hour),
		{StartTime: now.Add(-15 * time.Minute)}, // still running
	}

	if got := TotalDuration(entries, now); got != 75*time.Minute {
		t.Errorf("TotalDuration = %v, want 75m", got)
	}
}

func TestTotalDurationClampsFutureStart(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	entries := []model.TimeEntry{
		{StartTime: now.Add(time.Hour)}, // running, future-dated
	}

	if got := TotalDuration(entries, now); got != 0 {
		t.Errorf("TotalDuration = %v, want 0", got)
	}
}

func TestBreakdownByProject(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	base := now.Add(-8 * time.Hour)

	lookup := func(id int64) (string, string, bool) {
		switch id {
		case 1:
			return "Work", "#3498db", true
		case 2:
			return "Personal", "#e74c3c", true
		}
		return "", "", false
	}

	entries := []model.TimeEntry{
		entry(ptr(2), base, 30*time.Minute),
		entry(ptr(1), base.Add(time.Hour), time.Hour),
		entry(nil, base.Add(2*time.Hour), 15*time.Minute),
		entry(ptr(1), base.Add(4*time.Hour), 45*time.Minute),
	}

	slices := BreakdownByProject(entries, lookup, now)
	if len(slices) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(slices))
	}

	// Descending by duration: Work 1h45, Personal 30m, No Project 15m
	if slices[0].Name != "Work" || slices[0].Duration != 105*time.Minute {
		t.Errorf("slices[0] = %+v, want Work 1h45m", slices[0])
	}
	if slices[0].Color != "#3498db" {
		t.Errorf("Work color = %q", slices[0].Color)
	}
	if slices[1].Name != "Personal" || slices[1].Duration != 30*time.Minute {
		t.Errorf("slices[1] = %+v, want Personal 30m", slices[1])
	}
	if slices[2].Name != NoProjectName || slices[2].Duration != 15*time.Minute {
		t.Errorf("slices[2] = %+v, want No Project 15m", slices[2])
	}
	if slices[2].Color != "#888888" {
		t.Errorf("No Project color = %q, want #888888", slices[2].Color)
	}
}

func TestBreakdownTiesKeepFirstSeenOrder(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	base := now.Add(-4 * time.Hour)

	lookup := func(id int64) (string, string, bool) {
		if id == 1 {
			return "Alpha", "#111111", true
		}
		return "Beta", "#222222", true
	}

	entries := []model.TimeEntry{
		entry(ptr(2), base, time.Hour),
		entry(ptr(1), base.Add(time.Hour), time.Hour),
	}

	slices := BreakdownByProject(entries, lookup, now)
	if slices[0].Name != "Beta" || slices[1].Name != "Alpha" {
		t.Errorf("Tied groups must keep first-seen order, got %s then %s",
			slices[0].Name, slices[1].Name)
	}
}

func TestBreakdownDeletedProjectFallsBack(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	missing := func(int64) (string, string, bool) { return "", "", false }

	entries := []model.TimeEntry{
		entry(ptr(99), now.Add(-time.Hour), 20*time.Minute),
	}

	slices := BreakdownByProject(entries, missing, now)
	if len(slices) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(slices))
	}
	if slices[0].Name != NoProjectName || slices[0].Color != "#888888" {
		t.Errorf("Unresolvable project must use fallback labeling, got %+v", slices[0])
	}
}

func TestGroupByDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)

	// 23:30 UTC on Jan 14 is 01:30 Jan 15 in UTC+2
	entries := []model.TimeEntry{
		entry(nil, time.Date(2024, 1, 14, 23, 30, 0, 0, time.UTC), 30*time.Minute),
		entry(nil, time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC), time.Hour),
	}

	days := GroupByDay(entries, loc)
	if len(days) != 2 {
		t.Fatalf("Expected 2 local days, got %d", len(days))
	}
	jan15 := time.Date(2024, 1, 15, 0, 0, 0, 0, loc)
	if got := len(days[jan15]); got != 1 {
		t.Errorf("Entries on local Jan 15 = %d, want 1", got)
	}
}

func TestSortedDaysRecentFirst(t *testing.T) {
	mon := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	wed := mon.AddDate(0, 0, 2)
	days := map[time.Time][]model.TimeEntry{
		mon: nil,
		wed: nil,
	}

	sorted := SortedDays(days)
	if !sorted[0].Equal(wed) || !sorted[1].Equal(mon) {
		t.Errorf("SortedDays = %v, want most recent first", sorted)
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		day  time.Time
		want time.Time
	}{
		{time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}, // Monday
		{time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}, // Wednesday
		{time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}, // Saturday
		{time.Date(2024, 1, 21, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}, // Sunday
	}

	for _, tt := range tests {
		monday, sunday := WeekRange(tt.day)
		if monday.Day() != tt.want.Day() {
			t.Errorf("WeekRange(%s) monday = %v, want Jan 15", tt.day.Weekday(), monday)
		}
		if got := sunday.Sub(monday); got != 6*24*time.Hour {
			t.Errorf("Sunday is %v after Monday, want 6 days", got)
		}
	}
}

func TestWeeklyScenario(t *testing.T) {
	now := time.Date(2024, 1, 17, 18, 0, 0, 0, time.UTC) // Wednesday
	mon := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	lookup := func(id int64) (string, string, bool) {
		return "Work", "#3498db", true
	}

	entries := []model.TimeEntry{
		entry(ptr(1), mon, time.Hour),                      // Monday, 3600s
		entry(ptr(1), mon.AddDate(0, 0, 1), 30*time.Minute), // Tuesday, 1800s
		entry(nil, mon.AddDate(0, 0, 2), 15*time.Minute),    // Wednesday, 900s
	}

	if total := TotalDuration(entries, now); total != 6300*time.Second {
		t.Errorf("Weekly total = %v, want 1h45m", total)
	}

	slices := BreakdownByProject(entries, lookup, now)
	if len(slices) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(slices))
	}
	if slices[0].Name != "Work" || slices[0].Duration != 90*time.Minute {
		t.Errorf("slices[0] = %+v", slices[0])
	}

	if days := GroupByDay(entries, time.UTC); len(days) != 3 {
		t.Errorf("Expected 3 day groups, got %d", len(days))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 min"},
		{5 * time.Minute, "5 min"},
		{59*time.Minute + 59*time.Second, "59 min"},
		{time.Hour, "1:00"},
		{105 * time.Minute, "1:45"},
		{26*time.Hour + 5*time.Minute, "26:05"},
		{-time.Minute, "0 min"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{90 * time.Minute, "01:30:00"},
		{25 * time.Hour, "25:00:00"},
		{-time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
