package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	repo "lifedesk/internal/category/repository"
	"lifedesk/internal/model"
)

// CreateCategory inserts a new Category row and returns the created entity.
func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	const query = `
		INSERT INTO categories (id, name, icon, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, icon, color, created_at, updated_at`

	var cat model.Category
	err := r.db.QueryRowContext(ctx, query, opt.ID, opt.Name, opt.Icon, opt.Color).Scan(
		&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, repo.ErrFailedToInsert
	}
	return cat, nil
}

// GetOneCategory retrieves a single Category by the provided filters (AND condition).
// Returns zero-value Category (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (model.Category, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, name, icon, color, created_at, updated_at FROM categories WHERE %s LIMIT 1`,
		mods,
	)

	var cat model.Category
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return model.Category{}, repo.ErrFailedToGet
	}
	return cat, nil
}

// ListCategories returns a paginated list of Categories and the total count.
func (r *implRepository) ListCategories(ctx context.Context, opt repo.ListCategoriesOptions) ([]model.Category, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListCategories"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, name, icon, color, created_at, updated_at FROM categories %s`,
		mods,
	)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		cats = append(cats, cat)
	}
	return cats, total, nil
}

// UpdateCategory updates a Category by ID and returns the updated entity.
func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	const query = `
		UPDATE categories
		SET name = $1, icon = $2, color = $3, updated_at = $4
		WHERE id = $5
		RETURNING id, name, icon, color, created_at, updated_at`

	var cat model.Category
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Icon, opt.Color, time.Now(), opt.ID).Scan(
		&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return model.Category{}, repo.ErrFailedToUpdate
	}
	return cat, nil
}

// DeleteCategory removes a Category by ID.
func (r *implRepository) DeleteCategory(ctx context.Context, id string) error {
	const query = `DELETE FROM categories WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
