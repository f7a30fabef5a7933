package postgre

import (
	"fmt"
	"strings"

	repo "lifedesk/internal/item/repository"
)

// buildFilterConditions builds the shared WHERE conditions for list/count.
func (r *implRepository) buildFilterConditions(opt repo.ListItemsOptions) ([]string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Kind != "" {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", idx))
		args = append(args, opt.Kind)
		idx++
	}
	if opt.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", idx))
		args = append(args, opt.CategoryID)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.DueFrom != nil && opt.DueTo != nil {
		conditions = append(conditions, fmt.Sprintf("due_date >= $%d AND due_date <= $%d", idx, idx+1))
		args = append(args, *opt.DueFrom, *opt.DueTo)
		idx += 2
	}

	return conditions, args
}

// buildCountQuery builds WHERE clause + args for counting Items (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListItemsOptions) (string, []any) {
	conditions, args := r.buildFilterConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string
	conditions, args := r.buildFilterConditions(opt)
	idx := len(args) + 1

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
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
		idx++
	}

	return strings.Join(parts, " "), args
}
