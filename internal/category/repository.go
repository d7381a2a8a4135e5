package category

import (
	"context"

	"inventaris/internal/listquery"
	"inventaris/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindAll(ctx context.Context, p listquery.Params) ([]model.CategoryWithCount, int, error)
	Update(ctx context.Context, category *model.Category) error
	// DeleteIfNoItems deletes the category only when no item references it,
	// in a single statement so the dependent check cannot race a concurrent
	// item insert. Returns whether a row was deleted.
	DeleteIfNoItems(ctx context.Context, id string) (bool, error)
	IsNameUnique(ctx context.Context, name, excludeID string) (bool, error)
	// NamesInUse lists names of categories that have at least one item
	// (the listing filter dropdown).
	NamesInUse(ctx context.Context) ([]string, error)
	// AllForDropdown lists every category as id+name (the create/edit form
	// dropdown). Distinct from NamesInUse by design.
	AllForDropdown(ctx context.Context) ([]model.CategoryOption, error)
}
