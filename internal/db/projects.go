package db

import (
	"database/sql"
	"time"

	"github.com/dori/tempo/internal/model"
)

// CreateProject creates a new project and returns it with its assigned id
func (db *DB) CreateProject(name, color string) (*model.Project, error) {
	now := time.Now().UTC().Truncate(time.Second)

	res, err := db.Exec(`
		INSERT INTO projects (name, color, created_at)
		VALUES (?, ?, ?)
	`, name, color, formatTime(now))
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Project{
		ID:        id,
		Name:      name,
		Color:     color,
		CreatedAt: now,
	}, nil
}

// Projects returns all projects sorted by name
func (db *DB) Projects() ([]model.Project, error) {
	rows, err := db.Query(`
		SELECT id, name, color, created_at
		FROM projects
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}

	return projects, rows.Err()
}

// Project returns a single project by id, or nil if it does not exist
func (db *DB) Project(id int64) (*model.Project, error) {
	row := db.QueryRow(`
		SELECT id, name, color, created_at
		FROM projects WHERE id = ?
	`, id)

	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProject renames and/or recolors a project
func (db *DB) UpdateProject(id int64, name, color string) error {
	_, err := db.Exec(`
		UPDATE projects SET name = ?, color = ? WHERE id = ?
	`, name, color, id)
	return err
}

// DeleteProject deletes a project. Entries referencing it keep existing but
// lose the association (ON DELETE SET NULL). Deleting an id that does not
// exist is a no-op.
func (db *DB) DeleteProject(id int64) error {
	_, err := db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	return err
}

func scanProject(s scanner) (*model.Project, error) {
	var p model.Project
	var createdAt string

	if err := s.Scan(&p.ID, &p.Name, &p.Color, &createdAt); err != nil {
		return nil, err
	}

	parsed, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = parsed

	return &p, nil
}
