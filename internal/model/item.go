package model

import "time"

// ItemKind distinguishes the record types created from quick-add input.
type ItemKind string

const (
	KindTask  ItemKind = "task"
	KindEvent ItemKind = "event"
	KindNote  ItemKind = "note"
	KindIdea  ItemKind = "idea"
)

// Valid reports whether k is a known kind.
func (k ItemKind) Valid() bool {
	switch k {
	case KindTask, KindEvent, KindNote, KindIdea:
		return true
	}
	return false
}

// Priority is the coarse priority level of an item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recurrence is a coarse repetition pattern attached to a task or event.
type Recurrence string

const (
	RecurrenceDaily    Recurrence = "daily"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceMonthly  Recurrence = "monthly"
	RecurrenceWeekdays Recurrence = "weekdays"
	RecurrenceWeekends Recurrence = "weekends"
)

// ItemStatus is the lifecycle state of an item.
type ItemStatus string

const (
	StatusOpen     ItemStatus = "open"
	StatusDone     ItemStatus = "done"
	StatusArchived ItemStatus = "archived"
)

// Item is a unified task/event/note/idea record.
// DueDate carries a calendar date only; StartAt/EndAt are set for events.
type Item struct {
	ID         string
	Title      string
	Kind       ItemKind
	CategoryID string
	DueDate    *time.Time
	StartAt    *time.Time
	EndAt      *time.Time
	Priority   Priority
	Recurrence Recurrence
	Location   string
	Status     ItemStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
