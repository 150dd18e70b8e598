package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Timer actions
	Toggle   key.Binding
	Continue key.Binding
	Delete   key.Binding
	Describe key.Binding

	// Views
	TodayView    key.Binding
	WeekView     key.Binding
	ProjectsView key.Binding

	// Project actions
	Add     key.Binding
	Rename  key.Binding
	Recolor key.Binding

	// Selection
	CycleProject key.Binding

	// General
	Help    key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns the bindings shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Describe, k.TodayView, k.WeekView, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Continue, k.Delete},
		{k.Describe, k.CycleProject, k.Add, k.Rename, k.Recolor},
		{k.TodayView, k.WeekView, k.ProjectsView, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),

		Toggle: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space", "start/stop"),
		),
		Continue: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "continue entry"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Describe: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "description"),
		),

		TodayView: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "today"),
		),
		WeekView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "week"),
		),
		ProjectsView: key.NewBinding(
			key.WithKeys("3", "P"),
			key.WithHelp("3", "projects"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add project"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		Recolor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle color"),
		),

		CycleProject: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "project"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
