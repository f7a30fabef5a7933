package usecase

import (
	"context"

	"lifedesk/internal/category"
	repo "lifedesk/internal/category/repository"
)

// Detail retrieves a single Category by ID. Returns ErrCategoryNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (category.DetailCategoryOutput, error) {
	cat, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneCategory: %v", err)
		return category.DetailCategoryOutput{}, err
	}
	if cat.ID == "" {
		return category.DetailCategoryOutput{}, category.ErrCategoryNotFound
	}
	return category.DetailCategoryOutput{Category: cat}, nil
}

// Update modifies an existing Category. Returns ErrCategoryNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input category.UpdateCategoryInput) (category.UpdateCategoryOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
		return category.UpdateCategoryOutput{}, err
	}
	if existing.ID == "" {
		return category.UpdateCategoryOutput{}, category.ErrCategoryNotFound
	}

	// Renaming onto another category's name is rejected.
	if input.Name != "" && input.Name != existing.Name {
		dup, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{Name: input.Name})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
			return category.UpdateCategoryOutput{}, err
		}
		if dup.ID != "" {
			return category.UpdateCategoryOutput{}, category.ErrDuplicateName
		}
	}

	cat, err := uc.repo.UpdateCategory(ctx, repo.UpdateCategoryOptions{
		ID:    input.ID,
		Name:  uc.coalesce(input.Name, existing.Name),
		Icon:  uc.coalesce(input.Icon, existing.Icon),
		Color: uc.coalesce(input.Color, existing.Color),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCategory: %v", err)
		return category.UpdateCategoryOutput{}, err
	}
	return category.UpdateCategoryOutput{Category: cat}, nil
}

// Delete removes a Category by ID. Returns ErrCategoryNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneCategory: %v", err)
		return err
	}
	if existing.ID == "" {
		return category.ErrCategoryNotFound
	}
	if err := uc.repo.DeleteCategory(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCategory: %v", err)
		return err
	}
	return nil
}
