package category

import "lifedesk/internal/model"

// --- UseCase Inputs ---

type CreateCategoryInput struct {
	Name  string
	Icon  string
	Color string
}

type ListCategoriesInput struct {
	Limit  int
	Offset int
}

type UpdateCategoryInput struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// --- UseCase Outputs ---

type CreateCategoryOutput struct {
	Category model.Category
}

type ListCategoriesOutput struct {
	Categories []model.Category
	Total      int
	Limit      int
	Offset     int
}

type DetailCategoryOutput struct {
	Category model.Category
}

type UpdateCategoryOutput struct {
	Category model.Category
}
