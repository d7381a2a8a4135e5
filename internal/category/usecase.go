package category

import (
	"context"

	"inventaris/internal/category/dto"
	"inventaris/internal/listquery"
	"inventaris/internal/model"
)

type UseCase interface {
	List(ctx context.Context, p listquery.Params) ([]model.CategoryWithCount, int, error)
	Create(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	Update(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}
