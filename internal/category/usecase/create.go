package usecase

import (
	"context"

	"github.com/google/uuid"

	"lifedesk/internal/category"
	repo "lifedesk/internal/category/repository"
)

// Create creates a new Category after checking for name uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input category.CreateCategoryInput) (category.CreateCategoryOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneCategory: %v", err)
		return category.CreateCategoryOutput{}, err
	}
	if existing.ID != "" {
		return category.CreateCategoryOutput{}, category.ErrDuplicateName
	}

	cat, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		ID:    uuid.NewString(),
		Name:  input.Name,
		Icon:  input.Icon,
		Color: input.Color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCategory: %v", err)
		return category.CreateCategoryOutput{}, err
	}

	return category.CreateCategoryOutput{Category: cat}, nil
}
