package postgre

import (
	"fmt"
	"strings"

	repo "lifedesk/internal/category/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneCategory.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneCategoryOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Name != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(name) = LOWER($%d)", idx))
		args = append(args, opt.Name)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the ORDER + LIMIT + OFFSET clause for ListCategories.
func (r *implRepository) buildListQuery(opt repo.ListCategoriesOptions) (string, []any) {
	var parts []string
	var args []any
	idx := 1

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "name ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
