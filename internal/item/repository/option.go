package repository

import (
	"time"

	"lifedesk/internal/model"
)

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	ID         string
	Title      string
	Kind       model.ItemKind
	CategoryID string
	DueDate    *time.Time
	StartAt    *time.Time
	EndAt      *time.Time
	Priority   model.Priority
	Recurrence model.Recurrence
	Location   string
	Status     model.ItemStatus
	Notes      string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID string
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
// DueFrom/DueTo bound the due_date column when both are set.
type ListItemsOptions struct {
	Kind       string
	CategoryID string
	Status     string
	DueFrom    *time.Time
	DueTo      *time.Time
	Limit      int
	Offset     int
	OrderBy    string
}

// UpdateItemOptions holds the full column set written by UpdateItem.
// The usecase is responsible for coalescing partial input beforehand.
type UpdateItemOptions struct {
	ID         string
	Title      string
	CategoryID string
	DueDate    *time.Time
	StartAt    *time.Time
	EndAt      *time.Time
	Priority   model.Priority
	Recurrence model.Recurrence
	Location   string
	Status     model.ItemStatus
	Notes      string
}
