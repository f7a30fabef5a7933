package item

import (
	"time"

	"lifedesk/internal/model"
	"lifedesk/internal/quickadd"
)

// --- UseCase Inputs ---

type CreateItemInput struct {
	Title      string
	Kind       model.ItemKind
	CategoryID string
	DueDate    *time.Time
	StartAt    *time.Time
	EndAt      *time.Time
	Priority   model.Priority
	Recurrence model.Recurrence
	Location   string
	Notes      string
}

type ListItemsInput struct {
	Kind       string
	CategoryID string
	Status     string
	// Due is a relative date expression ("today", "tomorrow", "monday", ...)
	// resolved against the server clock; items are matched by due-date day.
	Due    string
	Limit  int
	Offset int
}

type UpdateItemInput struct {
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

// QuickAddInput is one natural-language capture. Preset selects the parsing
// profile (general, school, work, shopping); TypeHint pins the item kind.
type QuickAddInput struct {
	Text     string
	TypeHint string
	Preset   string
}

type PreviewInput struct {
	Text     string
	TypeHint string
	Preset   string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item model.Item
}

type ListItemsOutput struct {
	Items  []model.Item
	Total  int
	Limit  int
	Offset int
}

type DetailItemOutput struct {
	Item model.Item
}

type UpdateItemOutput struct {
	Item model.Item
}

type QuickAddOutput struct {
	Item   model.Item
	Parsed quickadd.ParsedItem
	// CalendarEventID is set when the created event was mirrored to Google
	// Calendar.
	CalendarEventID string
}

type PreviewOutput struct {
	Parsed quickadd.ParsedItem
}
