package http

import (
	"lifedesk/internal/category"
	pkgErrors "lifedesk/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case category.ErrCategoryNotFound:
		return pkgErrors.NewHTTPError(404, "category not found")
	case category.ErrDuplicateName:
		return pkgErrors.NewHTTPError(409, "category name already exists")
	case category.ErrInvalidPayload:
		return pkgErrors.NewHTTPError(400, "invalid category payload")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
