package repository

import (
	"context"

	"lifedesk/internal/model"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
