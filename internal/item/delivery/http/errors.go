package http

import (
	"lifedesk/internal/item"
	pkgErrors "lifedesk/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case item.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "item not found")
	case item.ErrCategoryNotFound:
		return pkgErrors.NewHTTPError(400, "category does not exist")
	case item.ErrInvalidKind:
		return pkgErrors.NewHTTPError(400, "invalid item kind")
	case item.ErrEmptyText:
		return pkgErrors.NewHTTPError(400, "text is required")
	case item.ErrInvalidDue:
		return pkgErrors.NewHTTPError(400, "unrecognized due expression")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
