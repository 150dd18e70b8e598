// Package tray keeps a secondary display surface in sync with the timer
// session without letting that surface touch the session or the database
// directly. The session pushes status snapshots in; tray-originated actions
// go out through a dispatch function that marshals them onto the main event
// loop.
package tray

import (
	"fmt"
	"sync"

	"github.com/dori/tempo/internal/timer"
)

// Action is a user intent originating from the tray menu
type Action int

const (
	ActionToggleTimer Action = iota
	ActionShowWindow
	ActionQuit
)

// String returns the menu label for an action
func (a Action) String() string {
	switch a {
	case ActionToggleTimer:
		return "Toggle Timer"
	case ActionShowWindow:
		return "Show Window"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Tray mirrors the timer state for rendering outside the main window. It
// implements timer.StatusObserver; the status is written from the main loop
// and may be read from the tray's own execution context, hence the mutex.
type Tray struct {
	mu     sync.Mutex
	status timer.Status

	// dispatch hands an action to the main event loop. It must be safe to
	// call from any goroutine; the loop side performs the actual session
	// calls.
	dispatch func(Action)
}

// New creates a tray that forwards actions through dispatch
func New(dispatch func(Action)) *Tray {
	return &Tray{
		status:   timer.Status{Elapsed: "00:00:00"},
		dispatch: dispatch,
	}
}

// TimerStatus implements timer.StatusObserver
func (t *Tray) TimerStatus(s timer.Status) {
	t.mu.Lock()
	t.status = s
	t.mu.Unlock()
}

// Status returns the last pushed timer status
func (t *Tray) Status() timer.Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Running reports whether the mirrored timer is running
func (t *Tray) Running() bool {
	return t.Status().Running
}

// ToggleLabel returns the start/stop menu label for the current state
func (t *Tray) ToggleLabel() string {
	if t.Running() {
		return "Stop Timer"
	}
	return "Start Timer"
}

// Tooltip renders the hover summary for the tray icon
func (t *Tray) Tooltip() string {
	s := t.Status()
	if !s.Running {
		return "Timer stopped"
	}
	if s.Description == "" {
		return fmt.Sprintf("Running: %s", s.Elapsed)
	}
	return fmt.Sprintf("%s: %s", s.Description, s.Elapsed)
}

// Activate forwards a menu selection to the main loop. Never invokes the
// session directly: calling timer operations from the tray's goroutine is
// undefined behavior for this design.
func (t *Tray) Activate(a Action) {
	if t.dispatch != nil {
		t.dispatch(a)
	}
}
