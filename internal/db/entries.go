package db

import (
	"database/sql"
	"time"

	"github.com/dori/tempo/internal/model"
)

// CreateEntry creates a new time entry with no end time. The entry starts at
// the caller-supplied instant, not at row-creation time.
func (db *DB) CreateEntry(projectID *int64, description string, startTime time.Time) (*model.TimeEntry, error) {
	now := time.Now().UTC().Truncate(time.Second)
	start := startTime.UTC().Truncate(time.Second)

	res, err := db.Exec(`
		INSERT INTO time_entries (project_id, description, start_time, created_at)
		VALUES (?, ?, ?, ?)
	`, projectID, description, formatTime(start), formatTime(now))
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.TimeEntry{
		ID:          id,
		ProjectID:   projectID,
		Description: description,
		StartTime:   start,
		CreatedAt:   now,
	}, nil
}

// StopEntry sets the end time on an entry. Stopping an id that does not
// exist is a no-op.
func (db *DB) StopEntry(id int64, endTime time.Time) error {
	_, err := db.Exec(`
		UPDATE time_entries SET end_time = ? WHERE id = ?
	`, formatTime(endTime), id)
	return err
}

// DeleteEntry deletes an entry. Deleting an id that does not exist is a no-op.
func (db *DB) DeleteEntry(id int64) error {
	_, err := db.Exec(`DELETE FROM time_entries WHERE id = ?`, id)
	return err
}

// RunningEntry returns the entry with no end time, or nil if no timer is
// running. Should more than one open entry exist, the one with the most
// recent start time wins; the rest stay open until stopped or deleted
// individually.
func (db *DB) RunningEntry() (*model.TimeEntry, error) {
	row := db.QueryRow(`
		SELECT id, project_id, description, start_time, end_time, created_at
		FROM time_entries
		WHERE end_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1
	`)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Entry returns a single entry by id, or nil if it does not exist
func (db *DB) Entry(id int64) (*model.TimeEntry, error) {
	row := db.QueryRow(`
		SELECT id, project_id, description, start_time, end_time, created_at
		FROM time_entries WHERE id = ?
	`, id)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// EntriesForDate returns all entries whose stored (UTC) start date equals
// the given date, most recent first
func (db *DB) EntriesForDate(date time.Time) ([]model.TimeEntry, error) {
	rows, err := db.Query(`
		SELECT id, project_id, description, start_time, end_time, created_at
		FROM time_entries
		WHERE date(start_time) = ?
		ORDER BY start_time DESC
	`, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// EntriesForRange returns all entries with a stored start date between
// startDate and endDate inclusive, most recent first
func (db *DB) EntriesForRange(startDate, endDate time.Time) ([]model.TimeEntry, error) {
	rows, err := db.Query(`
		SELECT id, project_id, description, start_time, end_time, created_at
		FROM time_entries
		WHERE date(start_time) >= ? AND date(start_time) <= ?
		ORDER BY start_time DESC
	`, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Helper functions

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntries(rows *sql.Rows) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func scanEntry(s scanner) (*model.TimeEntry, error) {
	var e model.TimeEntry
	var startTime, createdAt string
	var endTime *string

	err := s.Scan(&e.ID, &e.ProjectID, &e.Description, &startTime, &endTime, &createdAt)
	if err != nil {
		return nil, err
	}

	if e.StartTime, err = parseTime(startTime); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if endTime != nil {
		parsed, err := parseTime(*endTime)
		if err != nil {
			return nil, err
		}
		e.EndTime = &parsed
	}

	return &e, nil
}
