package ui

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/tempo/internal/app"
	"github.com/dori/tempo/internal/model"
	"github.com/dori/tempo/internal/timer"
	"github.com/dori/tempo/internal/tray"
)

// Debug logging (enable by setting TEMPO_DEBUG=1)
var rootDebugLog *os.File

func init() {
	if os.Getenv("TEMPO_DEBUG") == "1" {
		rootDebugLog, _ = os.OpenFile("/tmp/tempo-root-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func rootDebugf(format string, args ...interface{}) {
	if rootDebugLog != nil {
		fmt.Fprintf(rootDebugLog, format+"\n", args...)
		rootDebugLog.Sync()
	}
}

// projectInputMode says what the projects view's text input is editing
type projectInputMode int

const (
	projectInputNone projectInputMode = iota
	projectInputAdd
	projectInputRename
)

// projectPalette cycles through colors assigned to new projects
var projectPalette = []string{
	"#3498db", "#e74c3c", "#2ecc71", "#f39c12", "#9b59b6", "#1abc9c",
}

// RootModel is the main application model. It owns the timer session: every
// mutation, whether from a keypress, the tick, or a tray action marshaled in
// via Program.Send, goes through this model's Update on the event loop.
type RootModel struct {
	app     *app.App
	session *timer.Session
	keys    KeyMap
	help    help.Model
	styles  Styles
	width   int
	height  int

	currentView View
	status      timer.Status

	// Description input and project selection for the next entry
	input      textinput.Model
	projects   []model.Project
	projectIdx int // 0 = no project, i>0 = projects[i-1]

	// Today view
	entries []model.TimeEntry
	cursor  int

	// Week view
	weekEntries []model.TimeEntry
	weekStart   time.Time
	weekEnd     time.Time

	// Projects view
	projCursor   int
	projectInput projectInputMode
	projInput    textinput.Model
	renameID     int64

	statusMsg string
	errorMsg  string
}

// NewRootModel creates the root model and restores any running entry left
// by a previous process
func NewRootModel(application *app.App) RootModel {
	styles := DefaultStyles()

	h := help.New()
	h.ShowAll = false
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSep
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.FullSeparator = styles.HelpSep

	input := textinput.New()
	input.Placeholder = "What are you working on?"
	input.CharLimit = 200

	// Separate input for project add/rename so it never clobbers a
	// restored running description
	projInput := textinput.New()
	projInput.Placeholder = "Project name"
	projInput.CharLimit = 100

	session := timer.NewSession(application.DB)
	if rootDebugLog != nil {
		session.SetLogger(log.New(rootDebugLog, "session: ", log.LstdFlags))
	}

	m := RootModel{
		app:     application,
		session: session,
		keys:    DefaultKeyMap(),
		help:    h,
		styles:  styles,
		input:   input,
	}
	m.projInput = projInput

	// Crash/restart recovery: adopt the open entry and re-seed the
	// description and project selection from it
	if err := session.Restore(); err != nil {
		m.errorMsg = err.Error()
	} else if running := session.Running(); running != nil {
		m.input.SetValue(running.Description)
	}
	m.status = session.Status()

	return m
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return tea.Batch(m.loadProjects(), m.loadEntries(), tickCmd())
}

// tickCmd schedules the next 1-second display refresh
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// selectedProjectID maps the picker index to a project id, nil for the
// leading "No Project" slot
func (m *RootModel) selectedProjectID() *int64 {
	if m.projectIdx == 0 || m.projectIdx > len(m.projects) {
		return nil
	}
	return &m.projects[m.projectIdx-1].ID
}

// selectProject points the picker at the given project id
func (m *RootModel) selectProject(id *int64) {
	m.projectIdx = 0
	if id == nil {
		return
	}
	for i, p := range m.projects {
		if p.ID == *id {
			m.projectIdx = i + 1
			return
		}
	}
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	rootDebugf("RootModel.Update received msg type: %T", msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case TickMsg:
		m.status = m.session.Tick()
		return m, tickCmd()

	case TrayActionMsg:
		return m.handleTrayAction(msg.Action)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EntriesLoadedMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.entries = msg.Entries
		if m.cursor >= len(m.entries) {
			m.cursor = max(0, len(m.entries)-1)
		}
		return m, nil

	case WeekLoadedMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.weekEntries = msg.Entries
		m.weekStart = msg.Start
		m.weekEnd = msg.End
		return m, nil

	case ProjectsLoadedMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.projects = msg.Projects
		if running := m.session.Running(); running != nil {
			m.selectProject(running.ProjectID)
		}
		if m.projCursor >= len(m.projects) {
			m.projCursor = max(0, len(m.projects)-1)
		}
		return m, nil

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case RefreshMsg:
		return m, m.refreshCmd()
	}

	return m, nil
}

// handleTrayAction runs a tray menu selection. The message already arrived
// on the event loop, so touching the session here is safe.
func (m RootModel) handleTrayAction(a tray.Action) (tea.Model, tea.Cmd) {
	rootDebugf("tray action: %v", a)
	switch a {
	case tray.ActionToggleTimer:
		return m.toggleTimer()
	case tray.ActionShowWindow:
		// The terminal window is the main surface; nothing to unhide
		m.statusMsg = "tempo is running in this terminal"
		return m, nil
	case tray.ActionQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear transient messages on any keypress
	m.statusMsg = ""
	m.errorMsg = ""

	// Text input modes capture everything except confirm/cancel
	if m.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Cancel):
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if m.projectInput != projectInputNone {
		return m.handleProjectInputKey(msg)
	}

	// Global keybindings
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m.toggleTimer()

	case key.Matches(msg, m.keys.Describe):
		if m.session.Running() == nil {
			m.input.Focus()
			return m, textinput.Blink
		}
		m.statusMsg = "stop the timer to change the description"
		return m, nil

	case key.Matches(msg, m.keys.CycleProject):
		if m.session.Running() == nil {
			m.projectIdx = (m.projectIdx + 1) % (len(m.projects) + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.TodayView):
		m.currentView = ViewToday
		return m, m.loadEntries()
	case key.Matches(msg, m.keys.WeekView):
		m.currentView = ViewWeek
		return m, m.loadWeek()
	case key.Matches(msg, m.keys.ProjectsView):
		m.currentView = ViewProjects
		return m, m.loadProjects()
	}

	// View-local keys
	switch m.currentView {
	case ViewToday:
		return m.handleTodayKey(msg)
	case ViewProjects:
		return m.handleProjectsKey(msg)
	}

	return m, nil
}

// toggleTimer starts or stops the timer with the current description and
// project selection, then refreshes whichever view is showing
func (m RootModel) toggleTimer() (tea.Model, tea.Cmd) {
	wasRunning := m.session.Running() != nil
	elapsed := m.status.Elapsed
	description := strings.TrimSpace(m.input.Value())

	if err := m.session.Toggle(description, m.selectedProjectID()); err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}
	m.status = m.session.Status()

	if wasRunning {
		m.input.SetValue("")
		m.projectIdx = 0
		m.app.Notifier.SendTimerStopped(description, elapsed)
	} else {
		m.input.Blur()
		m.app.Notifier.SendTimerStarted(description)
	}

	return m, m.refreshCmd()
}

// refreshCmd reloads the data behind the active view
func (m RootModel) refreshCmd() tea.Cmd {
	switch m.currentView {
	case ViewWeek:
		return m.loadWeek()
	case ViewProjects:
		return m.loadProjects()
	default:
		return m.loadEntries()
	}
}
