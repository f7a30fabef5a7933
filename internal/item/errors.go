package item

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidKind      = errors.New("invalid item kind")
	ErrEmptyText        = errors.New("quick-add text is empty")
	ErrInvalidDue       = errors.New("unrecognized due expression")
)
