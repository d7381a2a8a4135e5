package item

import (
	"context"

	"inventaris/internal/listquery"
	"inventaris/internal/model"
)

type Repository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id string) (*model.Item, error)
	FindAll(ctx context.Context, p listquery.Params) ([]model.Item, int, error)
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id string) error
}
