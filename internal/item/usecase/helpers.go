package usecase

import "time"

// coalesce returns the first non-empty string — used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// coalesceTime returns newVal when set, otherwise the existing pointer.
// There is no way to clear a stored timestamp through a partial update.
func (uc *implUseCase) coalesceTime(newVal, existing *time.Time) *time.Time {
	if newVal != nil {
		return newVal
	}
	return existing
}
