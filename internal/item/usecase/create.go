package usecase

import (
	"context"

	"github.com/google/uuid"

	categoryRepo "lifedesk/internal/category/repository"
	"lifedesk/internal/item"
	repo "lifedesk/internal/item/repository"
	"lifedesk/internal/model"
)

// Create persists one Item. Kind defaults to task, priority to medium,
// status to open. A non-empty CategoryID must reference an existing category.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	kind := input.Kind
	if kind == "" {
		kind = model.KindTask
	}
	if !kind.Valid() {
		return item.CreateItemOutput{}, item.ErrInvalidKind
	}

	if input.CategoryID != "" {
		cat, err := uc.catRepo.GetOneCategory(ctx, categoryRepo.GetOneCategoryOptions{ID: input.CategoryID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneCategory: %v", err)
			return item.CreateItemOutput{}, err
		}
		if cat.ID == "" {
			return item.CreateItemOutput{}, item.ErrCategoryNotFound
		}
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:         uuid.NewString(),
		Title:      input.Title,
		Kind:       kind,
		CategoryID: input.CategoryID,
		DueDate:    input.DueDate,
		StartAt:    input.StartAt,
		EndAt:      input.EndAt,
		Priority:   priority,
		Recurrence: input.Recurrence,
		Location:   input.Location,
		Status:     model.StatusOpen,
		Notes:      input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: created}, nil
}
