package model

import "time"

// Category is a user-defined label used to bucket items, e.g. "Work" or
// "School". The quick-add parser reads categories but never mutates them.
type Category struct {
	ID        string
	Name      string
	Icon      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
