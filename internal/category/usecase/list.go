package usecase

import (
	"context"

	"lifedesk/internal/category"
	repo "lifedesk/internal/category/repository"
)

// List returns a paginated list of Categories.
func (uc *implUseCase) List(ctx context.Context, input category.ListCategoriesInput) (category.ListCategoriesOutput, error) {
	cats, total, err := uc.repo.ListCategories(ctx, repo.ListCategoriesOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCategories: %v", err)
		return category.ListCategoriesOutput{}, err
	}

	return category.ListCategoriesOutput{
		Categories: cats,
		Total:      total,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}, nil
}
