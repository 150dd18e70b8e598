package model

import (
	"time"
)

// TimeEntry represents a single tracked interval of work
type TimeEntry struct {
	ID          int64      `json:"id"`
	ProjectID   *int64     `json:"project_id,omitempty"`
	Description string     `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsRunning returns true if this entry has no recorded end time
func (e *TimeEntry) IsRunning() bool {
	return e.EndTime == nil
}

// DurationAt returns the entry's duration as of the given instant.
// A running entry counts up to now; negative spans clamp to zero.
func (e *TimeEntry) DurationAt(now time.Time) time.Duration {
	end := now
	if e.EndTime != nil {
		end = *e.EndTime
	}
	d := end.Sub(e.StartTime)
	if d < 0 {
		return 0
	}
	return d
}
