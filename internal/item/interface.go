package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) (UpdateItemOutput, error)

	// QuickAdd parses natural-language text and persists the resulting item.
	QuickAdd(ctx context.Context, input QuickAddInput) (QuickAddOutput, error)
	// Preview parses without persisting; backs the per-keystroke endpoint.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)
}
