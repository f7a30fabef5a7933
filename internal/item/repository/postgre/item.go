package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	repo "lifedesk/internal/item/repository"
	"lifedesk/internal/model"
)

const itemColumns = `id, title, kind, category_id, due_date, start_at, end_at,
	priority, recurrence, location, status, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem maps one row onto a model.Item, unwrapping nullable columns.
func scanItem(row rowScanner) (model.Item, error) {
	var (
		it         model.Item
		categoryID sql.NullString
		dueDate    sql.NullTime
		startAt    sql.NullTime
		endAt      sql.NullTime
		recurrence sql.NullString
	)
	err := row.Scan(
		&it.ID, &it.Title, &it.Kind, &categoryID, &dueDate, &startAt, &endAt,
		&it.Priority, &recurrence, &it.Location, &it.Status, &it.Notes,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return model.Item{}, err
	}
	if categoryID.Valid {
		it.CategoryID = categoryID.String
	}
	if dueDate.Valid {
		t := dueDate.Time
		it.DueDate = &t
	}
	if startAt.Valid {
		t := startAt.Time
		it.StartAt = &t
	}
	if endAt.Valid {
		t := endAt.Time
		it.EndAt = &t
	}
	if recurrence.Valid {
		it.Recurrence = model.Recurrence(recurrence.String)
	}
	return it, nil
}

// nullString maps "" to SQL NULL for optional foreign keys and enums.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	query := fmt.Sprintf(`
		INSERT INTO items (id, title, kind, category_id, due_date, start_at, end_at,
			priority, recurrence, location, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING %s`, itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Title, opt.Kind, nullString(opt.CategoryID),
		nullTime(opt.DueDate), nullTime(opt.StartAt), nullTime(opt.EndAt),
		opt.Priority, nullString(string(opt.Recurrence)), opt.Location,
		opt.Status, opt.Notes,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneItem retrieves a single Item by ID.
// Returns zero-value Item (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE id = $1 LIMIT 1`, itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Item{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns a filtered, paginated list of Items and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM items WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM items %s`, itemColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateItem updates an Item by ID and returns the updated entity.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	query := fmt.Sprintf(`
		UPDATE items
		SET title = $1, category_id = $2, due_date = $3, start_at = $4, end_at = $5,
			priority = $6, recurrence = $7, location = $8, status = $9, notes = $10,
			updated_at = $11
		WHERE id = $12
		RETURNING %s`, itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.Title, nullString(opt.CategoryID),
		nullTime(opt.DueDate), nullTime(opt.StartAt), nullTime(opt.EndAt),
		opt.Priority, nullString(string(opt.Recurrence)), opt.Location,
		opt.Status, opt.Notes, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
