package repository

// CreateCategoryOptions holds parameters for inserting a new Category.
type CreateCategoryOptions struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// GetOneCategoryOptions holds filter parameters for fetching a single Category.
// All non-empty fields are applied as AND conditions.
type GetOneCategoryOptions struct {
	ID   string
	Name string
}

// ListCategoriesOptions holds pagination parameters for listing Categories.
type ListCategoriesOptions struct {
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateCategoryOptions holds parameters for updating an existing Category.
type UpdateCategoryOptions struct {
	ID    string
	Name  string
	Icon  string
	Color string
}
