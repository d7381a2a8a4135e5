package item

import (
	"context"

	"inventaris/internal/item/dto"
	"inventaris/internal/listquery"
	"inventaris/internal/model"
)

type UseCase interface {
	List(ctx context.Context, p listquery.Params) (*dto.ListPage, error)
	Get(ctx context.Context, id string) (*model.Item, error)
	Create(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error)
	Update(ctx context.Context, input *dto.UpdateItemInput) (*model.Item, error)
	Delete(ctx context.Context, id string) error
}
