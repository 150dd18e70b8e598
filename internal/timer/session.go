package timer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dori/tempo/internal/model"
	"github.com/dori/tempo/internal/report"
)

var (
	// ErrAlreadyRunning is returned by Start when an entry is already open.
	// The open-at-most-one invariant is enforced here rather than left to
	// callers.
	ErrAlreadyRunning = errors.New("a timer is already running")

	// ErrNothingRunning is returned by Stop when no entry is open. State is
	// left consistent; callers may treat it as a benign no-op.
	ErrNothingRunning = errors.New("no timer is running")
)

// Store is the persistence surface the session needs
type Store interface {
	CreateEntry(projectID *int64, description string, startTime time.Time) (*model.TimeEntry, error)
	StopEntry(id int64, endTime time.Time) error
	DeleteEntry(id int64) error
	RunningEntry() (*model.TimeEntry, error)
}

// Status is the observer-visible summary of the session, pushed to every
// registered observer after each state change and on each tick
type Status struct {
	Running     bool
	Elapsed     string // HH:MM:SS
	Description string
	ProjectID   *int64
}

// StatusObserver receives status pushes. Observers are invoked on the
// session's own goroutine; implementations that hand the status to another
// execution context must do their own synchronization.
type StatusObserver interface {
	TimerStatus(Status)
}

// Session holds the in-memory timer state: at most one running entry,
// cached from storage. All methods must be called from a single goroutine
// (the UI event loop); secondary surfaces reach the session by marshaling
// onto that loop.
type Session struct {
	store     Store
	running   *model.TimeEntry
	observers []StatusObserver
	logger    *log.Logger
	now       func() time.Time
}

// NewSession creates a session over the given store
func NewSession(store Store) *Session {
	return &Session{
		store:  store,
		logger: log.New(io.Discard, "", 0),
		now:    time.Now,
	}
}

// SetLogger directs non-critical failure logging (best-effort deletes)
func (s *Session) SetLogger(logger *log.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// AddObserver registers an observer and immediately pushes the current
// status to it
func (s *Session) AddObserver(o StatusObserver) {
	s.observers = append(s.observers, o)
	o.TimerStatus(s.Status())
}

// Running returns the cached running entry, or nil
func (s *Session) Running() *model.TimeEntry {
	return s.running
}

// Status builds the current observer-visible summary
func (s *Session) Status() Status {
	if s.running == nil {
		return Status{Elapsed: report.FormatClock(0)}
	}
	return Status{
		Running:     true,
		Elapsed:     report.FormatClock(s.Elapsed()),
		Description: s.running.Description,
		ProjectID:   s.running.ProjectID,
	}
}

// Start begins a new entry at the current instant. It fails with
// ErrAlreadyRunning if an entry is open, and leaves the running pointer
// untouched if persistence fails.
func (s *Session) Start(description string, projectID *int64) error {
	if s.running != nil {
		return ErrAlreadyRunning
	}

	entry, err := s.store.CreateEntry(projectID, description, s.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to start timer: %w", err)
	}

	s.running = entry
	s.notify()
	return nil
}

// Stop closes the running entry at the current instant. If persistence
// fails the running pointer is kept so the stop can be retried.
func (s *Session) Stop() error {
	if s.running == nil {
		return ErrNothingRunning
	}

	if err := s.store.StopEntry(s.running.ID, s.now().UTC()); err != nil {
		return fmt.Errorf("failed to stop timer: %w", err)
	}

	s.running = nil
	s.notify()
	return nil
}

// Toggle stops the timer if one is running, otherwise starts a new entry
// with the supplied description and project selection
func (s *Session) Toggle(description string, projectID *int64) error {
	if s.running != nil {
		return s.Stop()
	}
	return s.Start(description, projectID)
}

// Continue starts a new entry seeded with the source entry's description
// and project. A running timer is stopped first; if that stop fails the
// continue is aborted so a second open entry can never be created.
func (s *Session) Continue(src *model.TimeEntry) error {
	if s.running != nil {
		if err := s.Stop(); err != nil {
			return err
		}
	}
	return s.Start(src.Description, src.ProjectID)
}

// Delete removes an entry and reports whether the caller should refresh.
// The running entry is never deleted; a storage failure is logged and
// swallowed (deletion is best-effort, the session must stay usable).
func (s *Session) Delete(entryID int64) bool {
	if s.running != nil && s.running.ID == entryID {
		return false
	}

	if err := s.store.DeleteEntry(entryID); err != nil {
		s.logger.Printf("failed to delete entry %d: %v", entryID, err)
		return false
	}

	return true
}

// Restore adopts the running entry left in storage by a previous process,
// if any, so a crash or restart does not lose an in-progress session
func (s *Session) Restore() error {
	entry, err := s.store.RunningEntry()
	if err != nil {
		return fmt.Errorf("failed to restore running entry: %w", err)
	}

	s.running = entry
	s.notify()
	return nil
}

// Elapsed returns the running entry's elapsed time, zero when idle.
// Negative spans (clock skew, future-dated entries) clamp to zero.
func (s *Session) Elapsed() time.Duration {
	if s.running == nil {
		return 0
	}
	return s.ElapsedSince(s.running.StartTime)
}

// ElapsedSince returns now minus start, clamped to zero
func (s *Session) ElapsedSince(start time.Time) time.Duration {
	d := s.now().Sub(start)
	if d < 0 {
		return 0
	}
	return d
}

// Tick recomputes the elapsed display and pushes it to observers. Called
// once a second by the hosting event loop while the process runs; this is
// the only wall-clock polling in the system.
func (s *Session) Tick() Status {
	st := s.Status()
	for _, o := range s.observers {
		o.TimerStatus(st)
	}
	return st
}

func (s *Session) notify() {
	st := s.Status()
	for _, o := range s.observers {
		o.TimerStatus(st)
	}
}
