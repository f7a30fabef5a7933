package category

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateCategoryInput) (CreateCategoryOutput, error)
	List(ctx context.Context, input ListCategoriesInput) (ListCategoriesOutput, error)
	Detail(ctx context.Context, id string) (DetailCategoryOutput, error)
	Update(ctx context.Context, input UpdateCategoryInput) (UpdateCategoryOutput, error)
	Delete(ctx context.Context, id string) error
}
