package usecase

import (
	"context"

	"lifedesk/internal/item"
	repo "lifedesk/internal/item/repository"
)

// List returns a filtered, paginated list of Items. The Due filter accepts
// the same relative expressions as quick-add ("today", "friday", "in 3 days")
// and narrows results to that calendar day.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	opt := repo.ListItemsOptions{
		Kind:       input.Kind,
		CategoryID: input.CategoryID,
		Status:     input.Status,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}

	if input.Due != "" {
		resolved, err := uc.dateMath.Resolve(input.Due, uc.clock())
		if err != nil {
			return item.ListItemsOutput{}, item.ErrInvalidDue
		}
		from := uc.dateMath.StartOfDay(resolved)
		to := uc.dateMath.EndOfDay(from)
		opt.DueFrom = &from
		opt.DueTo = &to
	}

	items, total, err := uc.repo.ListItems(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
