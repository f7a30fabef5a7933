package usecase

import (
	"context"

	categoryRepo "lifedesk/internal/category/repository"
	"lifedesk/internal/item"
	repo "lifedesk/internal/item/repository"
	"lifedesk/internal/model"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if it.ID == "" {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update modifies an existing Item. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	if input.CategoryID != "" && input.CategoryID != existing.CategoryID {
		cat, err := uc.catRepo.GetOneCategory(ctx, categoryRepo.GetOneCategoryOptions{ID: input.CategoryID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
			return item.UpdateItemOutput{}, err
		}
		if cat.ID == "" {
			return item.UpdateItemOutput{}, item.ErrCategoryNotFound
		}
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:         input.ID,
		Title:      uc.coalesce(input.Title, existing.Title),
		CategoryID: uc.coalesce(input.CategoryID, existing.CategoryID),
		DueDate:    uc.coalesceTime(input.DueDate, existing.DueDate),
		StartAt:    uc.coalesceTime(input.StartAt, existing.StartAt),
		EndAt:      uc.coalesceTime(input.EndAt, existing.EndAt),
		Priority:   model.Priority(uc.coalesce(string(input.Priority), string(existing.Priority))),
		Recurrence: model.Recurrence(uc.coalesce(string(input.Recurrence), string(existing.Recurrence))),
		Location:   uc.coalesce(input.Location, existing.Location),
		Status:     model.ItemStatus(uc.coalesce(string(input.Status), string(existing.Status))),
		Notes:      uc.coalesce(input.Notes, existing.Notes),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	return item.UpdateItemOutput{Item: updated}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return item.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}

// Complete marks an Item done. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Complete(ctx context.Context, id string) (item.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete GetOneItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:         existing.ID,
		Title:      existing.Title,
		CategoryID: existing.CategoryID,
		DueDate:    existing.DueDate,
		StartAt:    existing.StartAt,
		EndAt:      existing.EndAt,
		Priority:   existing.Priority,
		Recurrence: existing.Recurrence,
		Location:   existing.Location,
		Status:     model.StatusDone,
		Notes:      existing.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	return item.UpdateItemOutput{Item: updated}, nil
}
