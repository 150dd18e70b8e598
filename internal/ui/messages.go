package ui

import (
	"time"

	"github.com/dori/tempo/internal/model"
	"github.com/dori/tempo/internal/tray"
)

// View represents the current active view
type View int

const (
	ViewToday View = iota
	ViewWeek
	ViewProjects
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewToday:
		return "Today"
	case ViewWeek:
		return "Week"
	case ViewProjects:
		return "Projects"
	default:
		return "Unknown"
	}
}

// Messages for inter-component communication

// TickMsg is sent once a second to refresh the elapsed display
type TickMsg struct {
	Time time.Time
}

// TrayActionMsg carries a tray-originated action that has been marshaled
// onto the event loop via Program.Send
type TrayActionMsg struct {
	Action tray.Action
}

// EntriesLoadedMsg contains the entries for the current day view
type EntriesLoadedMsg struct {
	Entries []model.TimeEntry
	Err     error
}

// WeekLoadedMsg contains the entries for the current week view
type WeekLoadedMsg struct {
	Entries []model.TimeEntry
	Start   time.Time
	End     time.Time
	Err     error
}

// ProjectsLoadedMsg contains loaded projects
type ProjectsLoadedMsg struct {
	Projects []model.Project
	Err      error
}

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// RefreshMsg requests a reload of the active view's data
type RefreshMsg struct{}
