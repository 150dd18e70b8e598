package model

import (
	"time"
)

// Project represents a named, colored category entries can be tracked under
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
